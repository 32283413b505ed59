package main

import (
	"context"
	"errors"
	"os"

	"github.com/mailops-lab/mailquota/pkg/cli"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/utils/apperr"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		apperr.Handle(ctx, err)
		if errors.Is(err, model.ErrGroupNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
