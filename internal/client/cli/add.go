package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/lostfound/internal/client/images"
	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/services"
)

// Add walks the user through a new entry and submits it. Validation
// problems are printed and the catalog is left unchanged.
func (a *App) Add(ctx context.Context) error {
	p, err := a.readPayload()
	if err != nil {
		return err
	}

	e, err := a.catalog.Create(ctx, p)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(a.out, "Entry not saved:", verr.Error())
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Posted %s entry %s.\n", e.Kind, e.ID)
	return nil
}

func (a *App) readPayload() (models.Payload, error) {
	var (
		p   models.Payload
		err error
	)

	steps := []struct {
		dst  *string
		read func() (string, error)
	}{
		{&p.Kind, func() (string, error) {
			return GetChoice(a.reader, "Type", labels(models.Kinds), a.out)
		}},
		{&p.Title, func() (string, error) {
			return GetSimpleText(a.reader, "Title", a.out)
		}},
		{&p.Description, func() (string, error) {
			return GetMultiline(a.reader, "Description", a.out)
		}},
		{&p.Category, func() (string, error) {
			return GetChoice(a.reader, "Category", categoryLabels(), a.out)
		}},
		{&p.Location, func() (string, error) {
			return GetChoice(a.reader, "Location", locationLabels(), a.out)
		}},
		{&p.Date, func() (string, error) {
			return GetSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", a.out)
		}},
		{&p.ContactName, func() (string, error) {
			return GetSimpleText(a.reader, "Contact name", a.out)
		}},
		{&p.ContactInfo, func() (string, error) {
			return GetSimpleText(a.reader, "Contact (phone, email or handle)", a.out)
		}},
		{&p.Image, a.readImage},
	}

	for _, s := range steps {
		if *s.dst, err = s.read(); err != nil {
			return models.Payload{}, fmt.Errorf("read input: %w", err)
		}
	}
	return p, nil
}

// readImage accepts a local file path, which is embedded as a data URI, or
// a URL kept as is.
func (a *App) readImage() (string, error) {
	raw, err := GetSimpleText(a.reader, "Image (file path or URL, empty for none)", a.out)
	if err != nil || raw == "" {
		return raw, err
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "data:") {
		return raw, nil
	}
	if _, statErr := os.Stat(raw); statErr != nil {
		return raw, nil
	}
	return images.FromFile(raw)
}
