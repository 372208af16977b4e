package scenario

func str(s string) *string { return &s }

// BuiltIn returns the predefined request sequences.
func BuiltIn() map[string]Scenario {
	return map[string]Scenario{
		"reference": {
			Name:        "reference",
			Description: "Seven requests with two outages: the third and sixth payloads never arrive.",
			Requests: []Request{
				{Payload: str("req1")},
				{Payload: str("req2")},
				{}, // absent
				{Payload: str("req3")},
				{Payload: str("req4")},
				{}, // absent
				{Payload: str("req5")},
			},
		},
		"clean": {
			Name:        "clean",
			Description: "Five well-formed requests; every policy should report full availability.",
			Requests: []Request{
				{Payload: str("req1")},
				{Payload: str("req2")},
				{Payload: str("req3")},
				{Payload: str("req4")},
				{Payload: str("req5")},
			},
		},
		"first-request-lost": {
			Name:        "first-request-lost",
			Description: "The very first request is missing; fail-fast handling loses the whole run.",
			Requests: []Request{
				{}, // absent
				{Payload: str("req1")},
				{Payload: str("req2")},
				{Payload: str("req3")},
			},
		},
		"total-blackout": {
			Name:        "total-blackout",
			Description: "Every request is missing; only fallback handling returns any responses.",
			Requests: []Request{
				{},
				{},
				{},
			},
		},
	}
}
