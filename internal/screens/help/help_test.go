package help

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vitae/internal/router"
	"github.com/abhisek/vitae/internal/ui/theme"
)

type fixedStyles struct{}

func (fixedStyles) Styles() theme.Styles { return theme.NewStyles(theme.LightPalette) }

func TestEscClosesHelp(t *testing.T) {
	s := New(fixedStyles{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestOtherKeysAreIgnored(t *testing.T) {
	s := New(fixedStyles{})

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("expected no command")
	}
}

func TestViewListsBindings(t *testing.T) {
	view := New(fixedStyles{}).View(100, 30)
	for _, want := range []string{"previous tab", "toggle theme", "reload", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
