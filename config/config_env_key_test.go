package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"location": map[string]any{
			"resolveTimeout": "10s",
			"positionTtl":    "15m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "LOCATION_RESOLVETIMEOUT", want: "location.resolveTimeout"},
		{envKey: "LOCATION_POSITIONTTL", want: "location.positionTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Location.ResolveTimeout.Seconds() != 10 {
		t.Fatalf("ResolveTimeout default = %v, want 10s", cfg.Location.ResolveTimeout)
	}
	if cfg.Location.DefaultFallbackID != "damascus" {
		t.Fatalf("DefaultFallbackID default = %q", cfg.Location.DefaultFallbackID)
	}
	if cfg.CheckIn.StatsWindow != 500 {
		t.Fatalf("StatsWindow default = %d, want 500", cfg.CheckIn.StatsWindow)
	}
}
