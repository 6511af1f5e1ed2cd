package model

// Command describes one of the bot's slash commands on the dashboard
type Command struct {
	Name        string
	Description string
}

// DefaultCommands is the fixed list of slash commands the bot registers.
// The slice is shared, callers must not modify it.
var DefaultCommands = []Command{
	{Name: "/play", Description: "Play a song or playlist from a link or search query"},
	{Name: "/pause", Description: "Pause the current track"},
	{Name: "/resume", Description: "Resume playback"},
	{Name: "/skip", Description: "Skip to the next track in the queue"},
	{Name: "/stop", Description: "Stop playback and clear the queue"},
	{Name: "/queue", Description: "Show the upcoming tracks"},
	{Name: "/nowplaying", Description: "Show the track that is currently playing"},
	{Name: "/volume", Description: "Change the playback volume"},
	{Name: "/loop", Description: "Loop the current track or the whole queue"},
	{Name: "/shuffle", Description: "Shuffle the queue"},
	{Name: "/remove", Description: "Remove a track from the queue"},
	{Name: "/clear", Description: "Remove every track from the queue"},
	{Name: "/join", Description: "Make the bot join your voice channel"},
	{Name: "/leave", Description: "Make the bot leave the voice channel"},
}
