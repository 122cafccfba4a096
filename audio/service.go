package audio

import "log"

// Service runs the sound manager under the service hub
// A missing audio device is not fatal: the game continues silent
type Service struct {
	manager *SoundManager
	muted   bool
}

// NewService wraps a manager; muted applies once the device is open
func NewService(manager *SoundManager, muted bool) *Service {
	return &Service{manager: manager, muted: muted}
}

// Manager returns the wrapped sound manager
func (s *Service) Manager() *SoundManager {
	return s.manager
}

func (s *Service) Name() string           { return "audio" }
func (s *Service) Dependencies() []string { return nil }

// Init opens the speaker, logging and swallowing device errors
func (s *Service) Init() error {
	s.manager.SetMuted(s.muted)
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return nil
}

func (s *Service) Start() error { return nil }

func (s *Service) Stop() error {
	s.manager.Cleanup()
	return nil
}
