package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/manybody/builder"
)

func TestSiteID_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, i := range []int{0, 7, 10, 123456} {
		id := builder.SiteID(i)
		got, err := builder.SiteIndex(id)
		if err != nil || got != i {
			t.Errorf("SiteIndex(SiteID(%d)) = %d, %v", i, got, err)
		}
	}
	if builder.SiteID(42) != "42" {
		t.Errorf("SiteID(42) = %q; want \"42\"", builder.SiteID(42))
	}
}

func TestSiteIndex_Rejects(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "e1", "-3", "1.5", "x"} {
		if _, err := builder.SiteIndex(id); !errors.Is(err, builder.ErrBadSiteID) {
			t.Errorf("SiteIndex(%q) err = %v; want ErrBadSiteID", id, err)
		}
	}
}
