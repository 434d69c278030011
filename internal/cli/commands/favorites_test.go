package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
)

func TestFav_TogglesAndInvalidatesList(t *testing.T) {
	f, ts := newFakeAPI(t)
	app := newTestApp(t, ts.URL)
	ctx := context.Background()

	if err := (favCmd{}).Run(ctx, app, []string{"r1"}); err != ErrNotLoggedIn {
		t.Fatalf("fav without session: expected ErrNotLoggedIn, got %v", err)
	}
	signedIn(t, app)

	out := withStdoutCapture(t, func() {
		if err := (favoritesCmd{}).Run(ctx, app, nil); err != nil {
			t.Fatalf("favorites: %v", err)
		}
	})
	if !strings.Contains(out, "No favorites yet") {
		t.Fatalf("empty list expected, got %q", out)
	}

	out = withStdoutCapture(t, func() {
		if err := (favCmd{}).Run(ctx, app, []string{"r1"}); err != nil {
			t.Fatalf("fav: %v", err)
		}
	})
	if !strings.Contains(out, "Added r1") || !app.Favorites.Has("r1") {
		t.Fatalf("r1 must be a favorite, got %q", out)
	}

	out = withStdoutCapture(t, func() {
		if err := (favoritesCmd{}).Run(ctx, app, nil); err != nil {
			t.Fatalf("favorites: %v", err)
		}
	})
	if !strings.Contains(out, "audi-a4") {
		t.Fatalf("list must be refetched after toggle, got %q", out)
	}
	if n := f.count("GET /api/favorites"); n != 2 {
		t.Fatalf("expected 2 list requests, got %d", n)
	}

	_ = withStdoutCapture(t, func() {
		if err := (favCmd{}).Run(ctx, app, []string{"r1"}); err != nil {
			t.Fatalf("fav: %v", err)
		}
	})
	if app.Favorites.Has("r1") {
		t.Fatalf("second toggle must remove r1")
	}
}

func TestFav_RollsBackWhenServerRejects(t *testing.T) {
	_, ts := newFakeAPI(t)
	app := newTestApp(t, ts.URL)
	signedIn(t, app)

	// неизвестный id: сервер отвечает 404, локальное состояние не меняется
	err := (favCmd{}).Run(context.Background(), app, []string{"r404"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
	if app.Favorites.Has("r404") {
		t.Fatalf("optimistic flip must be rolled back")
	}
}

func TestInquire_PrefillsFromProfile(t *testing.T) {
	_, ts := newFakeAPI(t)
	app := newTestApp(t, ts.URL)
	ctx := context.Background()

	if err := (inquireCmd{}).Run(ctx, app, nil); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	var apiErr *api.Error
	err := (inquireCmd{}).Run(ctx, app, []string{"r1", "--message", "short"})
	if !errors.As(err, &apiErr) || len(apiErr.Fields) != 1 {
		t.Fatalf("expected a message field error, got %v", err)
	}

	signedIn(t, app)
	out := withStdoutCapture(t, func() {
		if err := (inquireCmd{}).Run(ctx, app, []string{"r1", "--message", "Da li je slobodno za vikend?"}); err != nil {
			t.Fatalf("inquire: %v", err)
		}
	})
	if !strings.Contains(out, "Inquiry q1 sent") {
		t.Fatalf("confirmation expected, got %q", out)
	}
}

func TestSettings_LangThemeAndCacheClear(t *testing.T) {
	_, ts := newFakeAPI(t)
	app := newTestApp(t, ts.URL)
	ctx := context.Background()

	out := withStdoutCapture(t, func() { _ = (langCmd{}).Run(ctx, app, nil) })
	if strings.TrimSpace(out) != "sr" {
		t.Fatalf("default language sr expected, got %q", out)
	}
	if err := (langCmd{}).Run(ctx, app, []string{"de"}); err == nil {
		t.Fatalf("unknown language must be rejected")
	}
	_ = withStdoutCapture(t, func() {
		if err := (langCmd{}).Run(ctx, app, []string{"en"}); err != nil {
			t.Fatalf("lang en: %v", err)
		}
		if err := (themeCmd{}).Run(ctx, app, []string{"dark"}); err != nil {
			t.Fatalf("theme dark: %v", err)
		}
	})
	if app.Preferences.Language() != "en" || app.Preferences.Theme() != "dark" {
		t.Fatalf("preferences not applied")
	}

	_ = withStdoutCapture(t, func() { _ = (categoriesCmd{}).Run(ctx, app, nil) })
	out = withStdoutCapture(t, func() {
		if err := (cacheClearCmd{}).Run(ctx, app, []string{"categories:"}); err != nil {
			t.Fatalf("cache-clear: %v", err)
		}
	})
	if !strings.Contains(out, "Removed 1 cached entries") {
		t.Fatalf("one entry expected, got %q", out)
	}
}
