package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/fetch"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// load runs one cached read and waits for a background refresh so it reaches the cache before exit.
func load[T any](ctx context.Context, app *state.App, opts fetch.Options, fn fetch.Func[T]) (T, error) {
	f := fetch.New[T](app.Cache)
	res, err := f.Run(ctx, opts, fn)
	f.Wait()
	if err != nil {
		var zero T
		return zero, err
	}
	if res.Stale {
		fmt.Fprintln(Out, "(cached)")
	}
	return res.Data, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func table() *tabwriter.Writer {
	return tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
}

func price(v float64, currency string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + currency + "/day"
}

func city(r dto.ResourceView) string {
	if r.Location.City == "" {
		return "-"
	}
	return r.Location.City
}

func printResources(items []dto.ResourceView, favs *state.Favorites) {
	tw := table()
	fmt.Fprintln(tw, "\tID\tSLUG\tTITLE\tCITY\tPRICE\tSTATUS")
	for _, r := range items {
		mark := " "
		if favs != nil && favs.Has(r.ID) {
			mark = "*"
		}
		featured := ""
		if r.IsFeatured {
			featured = " [featured]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\t%s\t%s\t%s\n",
			mark, r.ID, r.Slug, r.Title, featured, city(r), price(r.PricePerDay, r.Currency), r.Status)
	}
	_ = tw.Flush()
}

func printPage(total int64, page, totalPages int) {
	fmt.Fprintf(Out, "page %d/%d, %d total\n", page, totalPages, total)
}

func printResource(r dto.ResourceView, favorite bool) {
	tw := table()
	fmt.Fprintf(tw, "Title:\t%s\n", r.Title)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Slug:\t%s\n", r.Slug)
	if r.Category != nil {
		fmt.Fprintf(tw, "Category:\t%s\n", r.Category.Name)
	}
	fmt.Fprintf(tw, "Price:\t%s\n", price(r.PricePerDay, r.Currency))
	loc := []string{}
	for _, p := range []string{r.Location.Address, r.Location.City, r.Location.Country} {
		if p != "" {
			loc = append(loc, p)
		}
	}
	fmt.Fprintf(tw, "Location:\t%s\n", strings.Join(loc, ", "))
	fmt.Fprintf(tw, "Status:\t%s\n", r.Status)
	fmt.Fprintf(tw, "Views:\t%d\n", r.Views)
	fmt.Fprintf(tw, "Favorite:\t%t\n", favorite)
	if r.Owner != nil {
		fmt.Fprintf(tw, "Owner:\t%s %s <%s>\n", r.Owner.FirstName, r.Owner.LastName, r.Owner.Email)
	}
	if len(r.Options) > 0 {
		fmt.Fprintf(tw, "Options:\t%s\n", strings.Join(r.Options, ", "))
	}
	for _, e := range r.ExtraInfo {
		fmt.Fprintf(tw, "%s:\t%s\n", e.Label, e.Value)
	}
	for _, img := range r.Images {
		fmt.Fprintf(tw, "Image %d:\t%s\n", img.Order, img.URL)
	}
	_ = tw.Flush()
	if r.Description != "" {
		fmt.Fprintf(Out, "\n%s\n", r.Description)
	}
}

func printUser(u dto.UserView) {
	tw := table()
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Name:\t%s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	if u.Phone != "" {
		fmt.Fprintf(tw, "Phone:\t%s\n", u.Phone)
	}
	fmt.Fprintf(tw, "Language:\t%s\n", u.Language)
	_ = tw.Flush()
}
