package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
)

const (
	DefaultWeeks = 2
	MaxWeeks     = 8
)

type GetWeekGridInput struct {
	Anchor string // YYYY-MM-DD; vazio = hoje
	Weeks  int    // 0 = DefaultWeeks
}

type WeekGrid struct {
	Anchor   time.Time
	Weeks    int
	Template slot.Template
	Grid     domain.Grid
	Warnings domain.Warnings
}

// GetWeekGrid monta o template das semanas pedidas e cruza com todos os
// turnos gravados. Nada é cacheado entre chamadas.
type GetWeekGrid struct {
	repo  domain.Repository
	today func() time.Time
}

func NewGetWeekGrid(
	repo domain.Repository,
	today func() time.Time,
) *GetWeekGrid {
	return &GetWeekGrid{
		repo:  repo,
		today: today,
	}
}

func (uc *GetWeekGrid) Execute(
	ctx context.Context,
	in GetWeekGridInput,
) (*WeekGrid, error) {

	anchor := uc.today()
	if strings.TrimSpace(in.Anchor) != "" {
		d, err := slot.ParseDate(in.Anchor)
		if err != nil {
			return nil, err
		}
		anchor = d
	}

	weeks := in.Weeks
	if weeks == 0 {
		weeks = DefaultWeeks
	}
	if weeks < 1 || weeks > MaxWeeks {
		return nil, httperr.ErrValidation("weeks", "out_of_range", "")
	}

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	tmpl := slot.Generate(anchor, weeks)

	var warnings domain.Warnings
	grid := domain.BuildGrid(tmpl, appointments, &warnings)

	return &WeekGrid{
		Anchor:   slot.Civil(anchor),
		Weeks:    weeks,
		Template: tmpl,
		Grid:     grid,
		Warnings: warnings,
	}, nil
}
