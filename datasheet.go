// Package datasheet builds an editable terminal sheet over a backing store.
package datasheet

import (
	"context"

	"github.com/pkg/errors"

	nt "datasheet/entity"
	"datasheet/sheet"
	"datasheet/util"
)

// Todo: column order from layout rather than from the store
// Todo: page through large files instead of loading every line

// Store specifies a backing datastore.
type Store interface {
	sheet.Store
	// Fields of the sheet, in column order
	Fields() []nt.Field
}

type Config struct {
	// LayoutPath is read if present, otherwise a default layout is written there
	LayoutPath string
}

// New creates a sheet model over store.
func (cfg *Config) New(ctx context.Context, store Store, cb sheet.Clipboard, lgr nt.Logger) (mdl *sheet.Model, err error) {

	layout, err := cfg.layout(ctx, store.Fields(), lgr)
	if err != nil {
		return
	}

	err = layout.Resolve(store.Fields())
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve layout %s", cfg.LayoutPath)
		return
	}

	sc := &sheet.Config{Navigate: layout.Navigate}
	mdl, err = sc.New(ctx, store, layout, cb, lgr)
	return
}

func (cfg *Config) layout(ctx context.Context, fields []nt.Field, lgr nt.Logger) (layout *Layout, err error) {

	if cfg.LayoutPath == "" {
		layout = DefaultLayout(fields)
		return
	}

	if util.Exists(cfg.LayoutPath) {
		layout, err = LoadLayout(cfg.LayoutPath)
		return
	}

	layout = DefaultLayout(fields)
	err = util.WriteConfig(layout, cfg.LayoutPath, 0o644)
	if err != nil {
		return
	}

	lgr.Info(ctx, "wrote default layout", "path", cfg.LayoutPath, "columns", len(fields))
	return
}
