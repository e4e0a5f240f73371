package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/itchan-dev/mailadmin/frontend/internal/apiclient"
	"github.com/itchan-dev/mailadmin/shared/domain"
)

type inventoryClient interface {
	GetDominios(ctx context.Context) ([]domain.Dominio, error)
	GetAreas(ctx context.Context) ([]domain.Area, error)
	GetCorreos(ctx context.Context) ([]domain.Correo, error)
}

func writeReport(ctx context.Context, c inventoryClient, out io.Writer) error {
	dominios, err := c.GetDominios(ctx)
	if err != nil {
		return fmt.Errorf("get dominios: %w", err)
	}
	areas, err := c.GetAreas(ctx)
	if err != nil {
		return fmt.Errorf("get areas: %w", err)
	}
	correos, err := c.GetCorreos(ctx)
	if err != nil {
		return fmt.Errorf("get correos: %w", err)
	}

	perDominio := make(map[domain.DominioId]int, len(dominios))
	for _, correo := range correos {
		perDominio[correo.DominioId]++
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DOMINIO\tACTIVO\tAREAS\tCORREOS")
	for _, d := range dominios {
		linked := apiclient.AreasByDominio(areas, d.Id)
		active := "no"
		if d.IsActive {
			active = "si"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", d.Name, active, len(linked), perDominio[d.Id])
	}
	return w.Flush()
}
