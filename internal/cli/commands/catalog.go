package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/fetch"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories with active listing counts" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	cats, err := load(ctx, app, fetch.Options{Key: "categories:all", TTL: cache.Long, SWR: true}, app.API.Categories)
	if err != nil {
		return err
	}
	tw := table()
	fmt.Fprintln(tw, "SLUG\tNAME\tLISTINGS")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Slug, c.Name, c.ResourceCount)
	}
	return tw.Flush()
}

type resourcesCmd struct{}

func (resourcesCmd) Name() string        { return "resources" }
func (resourcesCmd) Description() string { return "Search active listings" }
func (resourcesCmd) Usage() string {
	return "resources [--category slug] [--q text] [--city c] [--min n] [--max n] [--featured] [--page n] [--limit n]"
}

// parseResourceParams reads the search flags; min/max/featured stay nil when not given.
func parseResourceParams(args []string) (api.ResourceParams, error) {
	var p api.ResourceParams
	fs := newFlagSet("resources")
	fs.StringVar(&p.Category, "category", "", "")
	fs.StringVar(&p.Query, "q", "", "")
	fs.StringVar(&p.City, "city", "", "")
	minPrice := fs.String("min", "", "")
	maxPrice := fs.String("max", "", "")
	featured := fs.Bool("featured", false, "")
	fs.IntVar(&p.Page, "page", 0, "")
	fs.IntVar(&p.Limit, "limit", 0, "")
	if err := fs.Parse(args); err != nil || fs.NArg() > 0 {
		return p, ErrUsage
	}
	for _, b := range []struct {
		raw string
		dst **float64
	}{{*minPrice, &p.MinPrice}, {*maxPrice, &p.MaxPrice}} {
		if b.raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(b.raw, 64)
		if err != nil || v < 0 {
			return p, ErrUsage
		}
		*b.dst = &v
	}
	if *featured {
		p.Featured = featured
	}
	return p, nil
}

func (resourcesCmd) Run(ctx context.Context, app *state.App, args []string) error {
	p, err := parseResourceParams(args)
	if err != nil {
		return err
	}
	res, err := load(ctx, app, fetch.Options{Key: "resources:" + p.Values().Encode(), TTL: cache.Short, SWR: true},
		func(ctx context.Context) (api.Page[dto.ResourceView], error) { return app.API.Resources(ctx, p) })
	if err != nil {
		return err
	}
	printResources(res.Items, app.Favorites)
	printPage(res.Total, res.Page, res.TotalPages)
	return nil
}

type resourceCmd struct{}

func (resourceCmd) Name() string        { return "resource" }
func (resourceCmd) Description() string { return "Show one listing by slug" }
func (resourceCmd) Usage() string       { return "resource <slug>" }

func (resourceCmd) Run(ctx context.Context, app *state.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	slug := args[0]
	r, err := load(ctx, app, fetch.Options{Key: "resource:" + slug, TTL: cache.Short},
		func(ctx context.Context) (dto.ResourceView, error) { return app.API.Resource(ctx, slug) })
	if err != nil {
		return err
	}
	printResource(r, app.Favorites.Has(r.ID))
	return nil
}

type mineCmd struct{}

func (mineCmd) Name() string        { return "mine" }
func (mineCmd) Description() string { return "List your own listings in any status" }
func (mineCmd) Usage() string       { return "mine [--page n] [--limit n]" }

func (mineCmd) Run(ctx context.Context, app *state.App, args []string) error {
	fs := newFlagSet("mine")
	pageNum := fs.Int("page", 1, "")
	limit := fs.Int("limit", 12, "")
	if err := fs.Parse(args); err != nil || fs.NArg() > 0 {
		return ErrUsage
	}
	if err := requireSession(app); err != nil {
		return err
	}
	key := fmt.Sprintf("%spage=%d&limit=%d", state.KeyMine, *pageNum, *limit)
	res, err := load(ctx, app, fetch.Options{Key: key, TTL: cache.Short},
		func(ctx context.Context) (api.Page[dto.ResourceView], error) {
			return app.API.MyResources(ctx, *pageNum, *limit)
		})
	if err != nil {
		return err
	}
	printResources(res.Items, app.Favorites)
	printPage(res.Total, res.Page, res.TotalPages)
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(resourcesCmd{})
	RegisterCmd(resourceCmd{})
	RegisterCmd(mineCmd{})
}
