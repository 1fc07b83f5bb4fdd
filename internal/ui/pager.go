package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Terminal is the part of *tea.Program the pager needs
type Terminal interface {
	Sender
	ReleaseTerminal() error
	RestoreTerminal() error
}

// PagerOps shows long documents in the ov pager
type PagerOps struct {
	program Terminal
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program Terminal) {
	p.program = program
}

// Show runs ov over content until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, the brochure repaints the screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showCmd returns a command that pauses rendering, runs the pager and
// reports back with a pagerMsg
func (p *PagerOps) showCmd(title, content string) tea.Cmd {
	return func() tea.Msg {
		if p.program == nil {
			return pagerMsg{title: title, err: fmt.Errorf("program not set")}
		}
		p.program.Send(pauseRenderingMsg{})
		err := p.Show(content)
		p.program.Send(resumeRenderingMsg{})
		return pagerMsg{title: title, err: err}
	}
}
