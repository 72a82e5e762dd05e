package gpt

import "testing"

func TestNewClient_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		apiKey  string
		model   string
		wantErr bool
	}{
		{name: "missing key", apiKey: "", model: "gpt-4o-mini", wantErr: true},
		{name: "missing model", apiKey: "sk-test", model: "", wantErr: true},
		{name: "valid", apiKey: "sk-test", model: "gpt-4o-mini", wantErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.apiKey, tc.model)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.ModelID != tc.model {
				t.Errorf("expected model %s, got %s", tc.model, client.ModelID)
			}
		})
	}
}
