package model

import (
	"encoding/json"
	"errors"
)

// Stream is an entry pushed by the bot while it is broadcasting. Fields the
// bot sends besides the known ones are kept in Extra and written back as-is.
type Stream struct {
	Streamer string         `json:"streamer"`
	Title    string         `json:"title"`
	Quality  string         `json:"quality"`
	Extra    map[string]any `json:"-"`
}

var ErrNoStreamer = errors.New("streamer can't be empty")

func (s *Stream) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	streamer, _ := raw["streamer"].(string)
	title, _ := raw["title"].(string)
	quality, _ := raw["quality"].(string)

	delete(raw, "streamer")
	delete(raw, "title")
	delete(raw, "quality")

	*s = Stream{
		Streamer: streamer,
		Title:    title,
		Quality:  quality,
	}

	if len(raw) > 0 {
		s.Extra = raw
	}

	return nil
}

func (s Stream) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}

	out["streamer"] = s.Streamer
	out["title"] = s.Title
	out["quality"] = s.Quality

	return json.Marshal(out)
}

func (s *Stream) Validate() error {
	if s.Streamer == "" {
		return ErrNoStreamer
	}

	return nil
}
