package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionSettings = "settings"
	actionQuiz     = "quiz"
)

// Settings sub-actions.
const (
	settingsMenu          = "menu"
	settingsMaxFactor     = "max_factor"
	settingsQuestionCount = "count"
)

// Quiz sub-actions.
const (
	quizStart = "start"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

// buildMaxFactorCallback builds callback data for choosing a factor ceiling.
func buildMaxFactorCallback(maxFactor int) string {
	return buildSettingsCallback(settingsMaxFactor, strconv.Itoa(maxFactor))
}

// buildQuestionCountCallback builds callback data for choosing a question count.
func buildQuestionCountCallback(count int) string {
	return buildSettingsCallback(settingsQuestionCount, strconv.Itoa(count))
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}
