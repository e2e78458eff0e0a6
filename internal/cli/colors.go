package cli

import (
	apperrors "github.com/agbru/samplecalc/internal/errors"
	"github.com/agbru/samplecalc/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active ui theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
