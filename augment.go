package salesfinder

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder/marker"
	"github.com/aerissecure/salesfinder/page"
)

// ErrNoRoute is returned for locations that are not a supported backpack.tf page.
var ErrNoRoute = errors.New("location is not a supported page")

// Augment parses the page read from r and runs the host matching location.
// Profile locations ending in a nearest timestamp pair are aligned to the
// page's snapshots; every other kind rewrites the document.
func Augment(ctx context.Context, location string, r io.Reader, opts page.Options) (Result, error) {
	kind := Match(location)
	if kind == Unknown {
		return Result{}, fmt.Errorf("%w: %q", ErrNoRoute, location)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse %s page: %w", kind, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Kind: kind, Location: location}
	switch kind {
	case Item:
		h, err := page.AugmentHistory(doc, opts)
		if err != nil {
			return Result{}, err
		}
		for _, row := range h.Rows {
			res.Tiers = append(res.Tiers, row.Tier)
		}
	case Premium:
		res.Tiers = page.AugmentPremium(doc, opts)
	case Profile:
		if marker.HasNearest(location) {
			if res.Location, err = page.NearestLocation(doc, location); err != nil {
				return Result{}, err
			}
		}
	case Unusual:
		res.Links = page.AugmentUnusual(doc, location)
	}

	if res.HTML, err = goquery.OuterHtml(doc.Selection); err != nil {
		return Result{}, err
	}
	klog.V(2).InfoS("Augmented page", "kind", kind, "location", res.Location, "rows", len(res.Tiers), "links", res.Links)
	return res, nil
}

// Step reads a profile page from r and returns location with its compare
// pair moved by increment snapshots.
func Step(ctx context.Context, location string, r io.Reader, increment int) (string, error) {
	if kind := Match(location); kind != Profile {
		return "", fmt.Errorf("%w: %q is a %s page, not a profile", ErrNoRoute, location, kind)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse profile page: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return page.StepLocation(doc, location, increment)
}
