// Package nav resolves sidebar and page links into in-app route changes or
// external URLs.
package nav

import (
	"fmt"
	"os/exec"
	"strings"

	"hamgaman/internal/logger"
	"hamgaman/internal/tmux"

	tea "github.com/charmbracelet/bubbletea"
)

// RootRoute is where empty hrefs go.
const RootRoute = "/"

// Destination is either Internal or External.
type Destination interface {
	isDestination()
	String() string
}

// Internal is an in-app route such as /my-courses.
type Internal struct {
	Route string
}

// External is an absolute URL. NewContext opens it outside the current view.
type External struct {
	URL        string
	NewContext bool
}

func (Internal) isDestination() {}
func (External) isDestination() {}

func (d Internal) String() string { return d.Route }
func (d External) String() string { return d.URL }

// Parse classifies an href. Anything starting with "http" is external and
// target "_blank" asks for a new context; everything else is a route.
func Parse(href, target string) Destination {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http") {
		return External{URL: href, NewContext: target == "_blank"}
	}
	if href == "" {
		return Internal{Route: RootRoute}
	}
	return Internal{Route: href}
}

// IsExternal reports whether d leaves the app.
func IsExternal(d Destination) bool {
	_, ok := d.(External)
	return ok
}

// NavigateMsg asks the app to switch to Route.
type NavigateMsg struct {
	Route string
}

// NoticeMsg is a user-visible message, shown as a blocking notice.
type NoticeMsg struct {
	Text string
	Err  error
}

// OpenFailedText is shown when an external link cannot be opened.
const OpenFailedText = "باز کردن پیوند ممکن نشد"

// Opener opens an external URL.
type Opener interface {
	Open(url string, newContext bool) error
}

// CommandOpener runs Command with the URL as its only argument. With
// newContext inside tmux, the command runs in a new tmux window instead.
type CommandOpener struct {
	Command string

	inTmux    func() bool
	newWindow func(name string, argv ...string) (string, error)
	start     func(name string, args ...string) error
}

// NewCommandOpener returns an opener for command (e.g. xdg-open).
func NewCommandOpener(command string) *CommandOpener {
	return &CommandOpener{
		Command:   command,
		inTmux:    tmux.InSession,
		newWindow: tmux.NewWindow,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

func (o *CommandOpener) Open(url string, newContext bool) error {
	if o.Command == "" {
		return fmt.Errorf("open %s: no opener configured", url)
	}
	if newContext && o.inTmux() {
		if _, err := o.newWindow("link", o.Command, url); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
		return nil
	}
	if err := o.start(o.Command, url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Navigator turns destinations into commands for the Bubble Tea runtime.
type Navigator struct {
	opener Opener
	log    *logger.Logger
}

// NewNavigator returns a navigator. A nil log discards output.
func NewNavigator(opener Opener, log *logger.Logger) *Navigator {
	if log == nil {
		log = logger.Nop()
	}
	return &Navigator{opener: opener, log: log}
}

// Go returns a command that performs the navigation. Internal routes produce
// NavigateMsg; external URLs run the opener and report failures as NoticeMsg.
func (n *Navigator) Go(d Destination) tea.Cmd {
	switch d := d.(type) {
	case Internal:
		return func() tea.Msg { return NavigateMsg{Route: d.Route} }
	case External:
		opener := n.opener
		log := n.log
		return func() tea.Msg {
			if opener == nil {
				return NoticeMsg{Text: OpenFailedText, Err: fmt.Errorf("open %s: no opener", d.URL)}
			}
			if err := opener.Open(d.URL, d.NewContext); err != nil {
				log.Warn("open external link failed", "url", d.URL, "error", err)
				return NoticeMsg{Text: OpenFailedText, Err: err}
			}
			log.Info("opened external link", "url", d.URL, "new_context", d.NewContext)
			return nil
		}
	}
	return nil
}
