package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  string
	}{
		{name: "Should default to today", text: "", wantType: CmdToday},
		{name: "Should default to today on blank text", text: "   ", wantType: CmdToday},
		{name: "Should parse today", text: "today", wantType: CmdToday},
		{name: "Should accept now as today", text: "now", wantType: CmdToday},
		{name: "Should parse tomorrow ignoring case", text: "Tomorrow", wantType: CmdTomorrow},
		{name: "Should parse date with argument", text: "date 2026-03-20", wantType: CmdDate, wantArgs: []string{"2026-03-20"}},
		{name: "Should parse next", text: "next", wantType: CmdNext},
		{name: "Should parse config with arguments", text: "config remind fajr 10", wantType: CmdConfig, wantArgs: []string{"remind", "fajr", "10"}},
		{name: "Should accept settings as config", text: "settings", wantType: CmdConfig},
		{name: "Should collapse extra spaces", text: "  config   offset   -5 ", wantType: CmdConfig, wantArgs: []string{"offset", "-5"}},
		{name: "Should parse reload", text: "reload", wantType: CmdReload},
		{name: "Should parse help", text: "help", wantType: CmdHelp},
		{name: "Should reject an unknown command", text: "weather today", wantErr: "unknown command: weather"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Nil(t, cmd)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	for _, want := range []string{"/prayer today", "/prayer next", "config digest", "config remind", "/prayer reload"} {
		assert.Contains(t, help, want)
	}
}
