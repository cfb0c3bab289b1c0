package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
		want    logrus.Level
	}{
		{name: "info text", level: "info", format: "text", want: logrus.InfoLevel},
		{name: "debug json", level: "debug", format: "json", want: logrus.DebugLevel},
		{name: "default format", level: "warn", format: "", want: logrus.WarnLevel},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.format, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestCategory(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	require.NoError(t, err)

	Category(log, "fixture").WithField("fixture", "loggedPage").Info("resolved")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fixture", line["category"])
	assert.Equal(t, "loggedPage", line["fixture"])
	assert.Equal(t, "resolved", line["msg"])
}

func TestCategory_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Category(nil, "step").Info("discarded")
	})
}
