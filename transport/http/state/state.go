package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace"
	case ServerStateInCleanupPeriod:
		return "cleanup"
	default:
		return "starting"
	}
}

// State is shared by the server, which moves it through shutdown, and the health endpoint, which reports it.
type State struct {
	current atomic.Int32
}

func New() *State {
	return &State{}
}

func (s *State) Get() ServerState {
	return ServerState(s.current.Load())
}

func (s *State) Set(state ServerState) {
	s.current.Store(int32(state))
}

func (s *State) Ready() bool {
	return s.Get() == ServerStateReady
}
