package dashboard

import (
	"cloudvault/internal/entity"
	"reflect"
	"testing"
	"time"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{n: -1, expected: "0 B"},
		{n: 512, expected: "512 B"},
		{n: 1536, expected: "1.5 KB"},
		{n: 5 << 20, expected: "5 MB"},
		{n: 75 << 30, expected: "75 GB"},
	}

	for _, tt := range tests {
		if got := HumanBytes(tt.n); got != tt.expected {
			t.Errorf("HumanBytes(%d): expected %q, got %q", tt.n, tt.expected, got)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(75, 100); got != 75 {
		t.Errorf("expected 75, got %d", got)
	}
	if got := Percent(1, 3); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
	if got := Percent(5, 0); got != 0 {
		t.Errorf("expected 0 for zero total, got %d", got)
	}
	if got := Percent(300, 100); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
}

func TestDistributionSumsToHundred(t *testing.T) {
	usage := []entity.TypeUsage{
		{FileType: entity.FileTypeImage, SizeBytes: 1},
		{FileType: entity.FileTypeDoc, SizeBytes: 1},
		{FileType: entity.FileTypeVideo, SizeBytes: 1},
		{FileType: "legacy", SizeBytes: 0},
	}

	slices := Distribution(usage)
	if len(slices) != 3 {
		t.Fatalf("expected 3 slices, got %+v", slices)
	}
	sum := 0
	for _, s := range slices {
		sum += s.Percent
	}
	if sum != 100 {
		t.Errorf("expected percentages to sum to 100, got %d (%+v)", sum, slices)
	}
	if slices[0].Type != entity.FileTypeDoc || slices[0].Label != "Documentos" {
		t.Errorf("expected documents first, got %+v", slices[0])
	}

	if got := Distribution(nil); len(got) != 0 {
		t.Errorf("expected empty distribution, got %+v", got)
	}
}

func TestSampleSummary(t *testing.T) {
	summary := SampleSummary("grid", "bogus", time.Now())

	if !summary.Sample {
		t.Error("expected sample flag")
	}
	if summary.Overview.Used != "75 GB" || summary.Overview.Total != "100 GB" || summary.Overview.Percent != 75 {
		t.Errorf("unexpected overview %+v", summary.Overview)
	}
	expected := []entity.DistributionSlice{
		{Type: entity.FileTypeDoc, Label: "Documentos", Percent: 45},
		{Type: entity.FileTypeImage, Label: "Imagens", Percent: 30},
		{Type: entity.FileTypeOther, Label: "Outros", Percent: 25},
	}
	if !reflect.DeepEqual(summary.Distribution, expected) {
		t.Errorf("unexpected distribution %+v", summary.Distribution)
	}
	if summary.View != ViewGrid || summary.Filter != entity.FileTypeAll {
		t.Errorf("unexpected view/filter %q/%q", summary.View, summary.Filter)
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ana Souza":        "AS",
		"carla":            "C",
		"João Pedro Silva": "JP",
		"":                 "",
	}
	for name, expected := range tests {
		if got := Initials(name); got != expected {
			t.Errorf("Initials(%q): expected %q, got %q", name, expected, got)
		}
	}
}

func TestTeamMemberAvatarAllowlist(t *testing.T) {
	hosts := []string{"assets.basehub.com", "basehub.earth"}

	tests := []struct {
		avatar   string
		expected string
	}{
		{avatar: "https://assets.basehub.com/a.png", expected: "https://assets.basehub.com/a.png"},
		{avatar: "https://BASEHUB.earth/b.png", expected: "https://BASEHUB.earth/b.png"},
		{avatar: "https://evil.basehub.earth.example/c.png", expected: ""},
		{avatar: "javascript:alert(1)", expected: ""},
		{avatar: "", expected: ""},
	}

	for _, tt := range tests {
		item := TeamMemberItem(entity.DbTeamMember{Name: "Ana Souza", AvatarURL: tt.avatar}, hosts)
		if item.AvatarURL != tt.expected {
			t.Errorf("avatar %q: expected %q, got %q", tt.avatar, tt.expected, item.AvatarURL)
		}
		if item.Initials != "AS" {
			t.Errorf("expected initials AS, got %q", item.Initials)
		}
	}
}
