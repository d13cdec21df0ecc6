package ui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/tonicformac/deepclean/internal/clean"
	"github.com/tonicformac/deepclean/internal/scan"
)

// Messages
type scanDoneMsg struct {
	results []scan.Result
	err     error
}

type cleanDoneMsg struct {
	outcome clean.Outcome
	results []scan.Result
	err     error
}

type diskUsageMsg struct {
	table table.Model
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }
