package conversation

import "testing"

func TestUserText(t *testing.T) {
	cases := []struct {
		name string
		h    History
		want string
	}{
		{"empty history", History{}, ""},
		{"assistant only", History{{Role: RoleAssistant, Text: "무엇을 도와드릴까요?"}}, ""},
		{
			"user turns joined by single space",
			History{
				{Role: RoleUser, Text: "상사가 폭언을 합니다"},
				{Role: RoleAssistant, Text: "자세히 말씀해 주세요"},
				{Role: RoleUser, Text: "회식 강요도 있어요"},
			},
			"상사가 폭언을 합니다 회식 강요도 있어요",
		},
		{
			"empty user turn keeps separator",
			History{
				{Role: RoleUser, Text: "a"},
				{Role: RoleUser, Text: ""},
				{Role: RoleUser, Text: "b"},
			},
			"a  b",
		},
	}
	for _, tc := range cases {
		if got := tc.h.UserText(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUserTurns(t *testing.T) {
	h := History{
		{Role: RoleUser, Text: "a"},
		{Role: RoleAssistant, Text: "b"},
		{Role: RoleUser, Text: ""},
		{Role: RoleUser, Text: "c"},
	}
	if got := h.UserTurns(); got != 3 {
		t.Errorf("expected 3 user turns, got %d", got)
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAssistant.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("system").Valid() {
		t.Error("unknown role must be invalid")
	}
}
