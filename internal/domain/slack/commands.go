package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdToday    CommandType = "today"
	CmdTomorrow CommandType = "tomorrow"
	CmdDate     CommandType = "date"
	CmdNext     CommandType = "next"
	CmdConfig   CommandType = "config"
	CmdReload   CommandType = "reload"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand splits the slash command text into a command and its arguments.
// An empty text shows today's schedule.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdToday}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "today", "now":
		cmd.Type = CmdToday
	case "tomorrow":
		cmd.Type = CmdTomorrow
	case "date":
		cmd.Type = CmdDate
	case "next":
		cmd.Type = CmdNext
	case "config", "settings":
		cmd.Type = CmdConfig
	case "reload":
		cmd.Type = CmdReload
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Schedule:*
• ` + "`/prayer`" + ` or ` + "`/prayer today`" + ` - Today's prayer times
• ` + "`/prayer tomorrow`" + ` - Tomorrow's prayer times
• ` + "`/prayer date YYYY-MM-DD`" + ` - Prayer times for a date (ex: 2026-03-20)
• ` + "`/prayer next`" + ` - Next prayer and time remaining

*Notifications:*
• ` + "`/prayer config digest HH:MM`" + ` - Post the daily schedule at a time, ` + "`off`" + ` to disable
• ` + "`/prayer config day today|tomorrow`" + ` - Which day the daily schedule shows
• ` + "`/prayer config remind dhuhr 10`" + ` - Remind N minutes before a prayer, ` + "`off`" + ` to disable

*Display:*
• ` + "`/prayer config offset -5`" + ` - Shift every time by N minutes (-120 to 120)
• ` + "`/prayer config prayer-offset fajr 3`" + ` - Shift a single prayer
• ` + "`/prayer config prayers fajr,dhuhr,asr,maghrib,isha`" + ` - Prayers to show, ` + "`all`" + ` for every one
• ` + "`/prayer config lang ru|crh-Cyrl|crh-Latn|en`" + ` - Language
• ` + "`/prayer config location NAME`" + ` - Location shown in the header
• ` + "`/prayer config show location|hijri|holidays on|off`" + ` - Toggle header lines
• ` + "`/prayer config hijri-style cyrillic|latin`" + ` - Hijri month names
• ` + "`/prayer config show`" + ` - Show current settings

*Admin:*
• ` + "`/prayer reload`" + ` - Reload the prayer time table`
}
