package prompts

import (
	"strings"
	"testing"
)

func TestHumanizeTemplate(t *testing.T) {
	tmpl, err := Get(Humanize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", tmpl.Temperature)
	}
	if got := tmpl.UserMessage("hello"); got != "Rewrite this text to sound naturally human:\n\nhello" {
		t.Fatalf("unexpected user message: %q", got)
	}
	for _, want := range []string{"natural human writing", "Keep the original meaning", "vary sentence length", "do not invent new facts"} {
		if !strings.Contains(tmpl.System, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}

func TestProductBriefTemplate(t *testing.T) {
	tmpl, err := Get(ProductBrief)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Temperature != 0.6 {
		t.Fatalf("unexpected temperature: %v", tmpl.Temperature)
	}

	msg := tmpl.UserMessage("a barber booking app")
	idea := strings.Index(msg, "a barber booking app")
	constraint := strings.Index(msg, "multiple shops and recurring monthly or yearly subscriptions")
	if idea < 0 || constraint < 0 || constraint < idea {
		t.Fatalf("constraint must follow the idea: %q", msg)
	}
	for _, section := range BriefSections {
		if !strings.Contains(tmpl.System, section) {
			t.Fatalf("system prompt missing section %q", section)
		}
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	if _, err := Get("poem"); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != Humanize || names[1] != ProductBrief {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestMissingSections(t *testing.T) {
	brief := "## Problem\n...\n## Target Users\n...\n**Core features**\n...\n## MVP scope\n"
	missing := MissingSections(brief)
	want := []string{"Subscription tiers", "Tech stack suggestion", "Next steps"}
	if strings.Join(missing, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected missing sections: %v", missing)
	}
	if got := MissingSections(strings.Join(BriefSections, "\n")); len(got) != 0 {
		t.Fatalf("expected no missing sections, got %v", got)
	}
}
