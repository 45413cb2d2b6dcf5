package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackData(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{name: "menu", data: buildSettingsCallback(settingsMenu), action: actionSettings, params: []string{settingsMenu}},
		{name: "max factor", data: buildMaxFactorCallback(7), action: actionSettings, params: []string{settingsMaxFactor, "7"}},
		{name: "count", data: buildQuestionCountCallback(20), action: actionSettings, params: []string{settingsQuestionCount, "20"}},
		{name: "start", data: buildQuizStartCallback(), action: actionQuiz, params: []string{quizStart}},
		{name: "bare", data: "quiz", action: actionQuiz, params: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.params, cd.Params)
			assert.Equal(t, tt.data, cd.Raw)
			assert.Equal(t, tt.data, callbackData{Action: cd.Action, Params: cd.Params}.encode())
		})
	}

	assert.Equal(t, "settings:max_factor:7", buildMaxFactorCallback(7))
	assert.Equal(t, "", decodeCallback("quiz").param(0))
}
