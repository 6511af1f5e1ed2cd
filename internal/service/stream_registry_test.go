package service

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/stretchr/testify/suite"
)

type StreamRegistryTestSuite struct {
	suite.Suite
	registry *StreamRegistry
}

func (s *StreamRegistryTestSuite) SetupTest() {
	s.registry = NewStreamRegistry(DefaultMaxStreams)
}

func TestStreamRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(StreamRegistryTestSuite))
}

func streamers(list []model.Stream) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Streamer)
	}
	return out
}

func (s *StreamRegistryTestSuite) TestAddPutsNewestFirst() {
	s.registry.Add(model.Stream{Streamer: "a"})
	s.registry.Add(model.Stream{Streamer: "b"})
	s.registry.Add(model.Stream{Streamer: "c"})

	s.Equal([]string{"c", "b", "a"}, streamers(s.registry.List()))
}

func (s *StreamRegistryTestSuite) TestAddSameStreamerReplacesAndMovesToFront() {
	s.registry.Add(model.Stream{Streamer: "a", Title: "old"})
	s.registry.Add(model.Stream{Streamer: "b"})
	s.registry.Add(model.Stream{Streamer: "a", Title: "new"})

	list := s.registry.List()
	s.Equal([]string{"a", "b"}, streamers(list))
	s.Equal("new", list[0].Title)
}

func (s *StreamRegistryTestSuite) TestAddEvictsOldestPastCap() {
	for i := 0; i < 15; i++ {
		s.registry.Add(model.Stream{Streamer: fmt.Sprintf("s%d", i)})
	}

	list := s.registry.List()
	s.Len(list, DefaultMaxStreams)
	s.Equal("s14", list[0].Streamer)
	s.Equal("s5", list[DefaultMaxStreams-1].Streamer)
}

func (s *StreamRegistryTestSuite) TestReAddAtCapKeepsEveryoneElse() {
	for i := 0; i < DefaultMaxStreams; i++ {
		s.registry.Add(model.Stream{Streamer: fmt.Sprintf("s%d", i)})
	}

	s.registry.Add(model.Stream{Streamer: "s0"})

	list := s.registry.List()
	s.Len(list, DefaultMaxStreams)
	s.Equal("s0", list[0].Streamer)
	s.Equal("s1", list[DefaultMaxStreams-1].Streamer)
}

func (s *StreamRegistryTestSuite) TestRemoveRestoresPriorState() {
	s.registry.Add(model.Stream{Streamer: "a"})
	s.registry.Add(model.Stream{Streamer: "b"})
	before := s.registry.List()

	s.registry.Add(model.Stream{Streamer: "c"})
	s.True(s.registry.Remove("c"))

	s.Equal(before, s.registry.List())
}

func (s *StreamRegistryTestSuite) TestRemoveMissingIsNoop() {
	s.registry.Add(model.Stream{Streamer: "a"})

	s.False(s.registry.Remove("ghost"))
	s.Equal([]string{"a"}, streamers(s.registry.List()))
}

func (s *StreamRegistryTestSuite) TestListIsACopy() {
	s.registry.Add(model.Stream{Streamer: "a"})

	list := s.registry.List()
	list[0].Streamer = "mutated"

	s.Equal("a", s.registry.List()[0].Streamer)
}

func (s *StreamRegistryTestSuite) TestRandomSequencesKeepInvariants() {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		name := fmt.Sprintf("s%d", rng.Intn(25))
		if rng.Intn(4) == 0 {
			s.registry.Remove(name)
		} else {
			s.registry.Add(model.Stream{Streamer: name})
			s.Equal(name, s.registry.List()[0].Streamer)
		}

		list := s.registry.List()
		s.LessOrEqual(len(list), DefaultMaxStreams)

		seen := make(map[string]bool, len(list))
		for _, st := range list {
			s.False(seen[st.Streamer], "duplicate streamer %s", st.Streamer)
			seen[st.Streamer] = true
		}
	}
}

func (s *StreamRegistryTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("s%d", i%12)
			s.registry.Add(model.Stream{Streamer: name})
			_ = s.registry.List()
			if i%3 == 0 {
				s.registry.Remove(name)
			}
		}(i)
	}

	wg.Wait()
	s.LessOrEqual(s.registry.Len(), DefaultMaxStreams)
}

func (s *StreamRegistryTestSuite) TestNonPositiveMaxFallsBackToDefault() {
	r := NewStreamRegistry(0)
	for i := 0; i < 20; i++ {
		r.Add(model.Stream{Streamer: fmt.Sprintf("s%d", i)})
	}

	s.Equal(DefaultMaxStreams, r.Len())
}
