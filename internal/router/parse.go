package router

import (
	"encoding/json"
	"strconv"
	"strings"

	"jobfinder-chatbot/internal/catalog"
)

// ParseDecision turns a raw model reply into a Decision. It never fails:
// anything that is not a well-formed JSON object becomes a DirectAnswer
// carrying the reply unchanged.
func ParseDecision(reply string) Decision {
	d, _ := parseReply(reply)
	return d
}

// replyInfo describes how a reply was read, for logging.
type replyInfo struct {
	structured bool
	action     Action
	err        error
}

func parseReply(reply string) (Decision, replyInfo) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return DirectAnswer{Text: reply}, replyInfo{}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return DirectAnswer{Text: reply}, replyInfo{structured: true, err: err}
	}

	tag, _ := obj["action"].(string)
	action := ParseAction(tag)
	info := replyInfo{structured: true, action: action}

	switch action {
	case ActionAskForClarification:
		question, _ := obj["question"].(string)
		if strings.TrimSpace(question) == "" {
			question = DefaultClarificationQuestion
		}
		return Clarification{Question: question}, info

	case ActionCallFunction:
		name := functionName(obj)
		return FunctionCall{
			Function: catalog.ParseFunction(name),
			Name:     name,
			Params:   parseParams(obj["parameters"]),
		}, info

	default:
		return FunctionCall{Function: catalog.FunctionUnknown, Name: tag, Params: map[string]string{}}, info
	}
}

func functionName(obj map[string]any) string {
	if name, ok := obj["function_name"].(string); ok {
		return name
	}
	name, _ := obj["functionName"].(string)
	return name
}

// parseParams stringifies scalar values, drops nulls and folds legacy keys.
// A legacy key is ignored when its canonical key is present too.
// A non-object yields an empty set.
func parseParams(raw any) map[string]string {
	params := map[string]string{}
	m, ok := raw.(map[string]any)
	if !ok {
		return params
	}

	for k, v := range m {
		key := catalog.NormalizeParamKey(k)
		if _, canonical := m[key]; canonical && key != k {
			continue
		}

		var s string
		switch val := v.(type) {
		case nil:
			continue
		case string:
			s = val
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(val)
		default:
			b, err := json.Marshal(val)
			if err != nil {
				continue
			}
			s = string(b)
		}
		params[key] = strings.TrimSpace(s)
	}
	return params
}
