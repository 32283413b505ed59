package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

func TestOutputFormat(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		gt.B(t, types.FormatText.IsValid()).True()
		gt.B(t, types.FormatCSV.IsValid()).True()
	})

	t.Run("invalid format", func(t *testing.T) {
		gt.B(t, types.OutputFormat("xml").IsValid()).False()
		gt.B(t, types.OutputFormat("").IsValid()).False()
	})
}
