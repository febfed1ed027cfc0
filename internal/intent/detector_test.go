package intent

import "testing"

func TestIsConversation(t *testing.T) {
	cases := []struct {
		command string
		want    bool
	}{
		{"what is machine learning", true},
		{"WHAT IS machine learning", true},
		{"Tell Me About the roman empire", true},
		{"compare python and go", true},
		{"explain quantum computing", true},

		// Action exceptions keep their opener from counting
		{"what time is it", false},
		{"What's the weather today", false},
		{"what is the time", false},
		{"WHAT DATE is it", false},

		// Long questions ending in "?"
		{"do you think it will rain later this evening?", true},
		{"is it raining?", false},

		// Plain action commands
		{"set volume to 50", false},
		{"open chrome", false},
		{"play some jazz", false},
	}

	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			if got := IsConversation(tc.command); got != tc.want {
				t.Errorf("IsConversation(%q) = %v, want %v", tc.command, got, tc.want)
			}
		})
	}
}
