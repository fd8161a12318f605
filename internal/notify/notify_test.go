package notify_test

import (
	"fmt"
	"testing"

	"turak/internal/notify"
)

func TestFeed_RecordsInOrder(t *testing.T) {
	f := notify.NewFeed()
	f.Success("logged in")
	f.Error("failed to load houses")

	got := f.Recent()
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].Level != notify.LevelSuccess || got[0].Message != "logged in" {
		t.Fatalf("first entry wrong: %+v", got[0])
	}
	if got[1].Level != notify.LevelError || got[1].Message != "failed to load houses" {
		t.Fatalf("second entry wrong: %+v", got[1])
	}
	if got[0].ID == got[1].ID {
		t.Fatal("notifications must have distinct ids")
	}
}

func TestFeed_BoundedRetention(t *testing.T) {
	f := notify.NewFeed()
	for i := range 100 {
		f.Success(fmt.Sprintf("n%d", i))
	}

	got := f.Recent()
	if len(got) != 64 {
		t.Fatalf("want 64 retained, got %d", len(got))
	}
	if got[len(got)-1].Message != "n99" {
		t.Fatalf("newest entry lost: %q", got[len(got)-1].Message)
	}
}

func TestFeed_ChannelDropsWhenFull(t *testing.T) {
	f := notify.NewFeed()
	// No consumer: overflowing the buffer must not block the producer.
	for i := range 200 {
		f.Error(fmt.Sprintf("n%d", i))
	}

	n := <-f.C()
	if n.Message != "n0" {
		t.Fatalf("channel head: want n0, got %q", n.Message)
	}
}
