package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/circle-merge/core"
)

// ScreenService owns the tcell screen lifecycle
// Once initialized, a crash on any goroutine restores the terminal through core's reset hook
type ScreenService struct {
	screen   tcell.Screen
	finiOnce sync.Once
}

func NewScreenService(screen tcell.Screen) *ScreenService {
	return &ScreenService{screen: screen}
}

// Screen returns the managed screen
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}

func (s *ScreenService) Name() string           { return "terminal" }
func (s *ScreenService) Dependencies() []string { return nil }

func (s *ScreenService) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()
	core.SetResetHook(s.fini)
	return nil
}

func (s *ScreenService) Start() error { return nil }

func (s *ScreenService) Stop() error {
	s.fini()
	core.SetResetHook(nil)
	return nil
}

func (s *ScreenService) fini() {
	s.finiOnce.Do(s.screen.Fini)
}
