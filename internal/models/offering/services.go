package offering

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

func addService(g *Global, in AddServiceInput) error {
	services, err := document.Insert(g.Services, Service{
		ID:           in.ID,
		Title:        in.Title,
		Description:  in.Description,
		DisplayOrder: len(g.Services),
	}, ErrCodeDuplicateServiceID, "service")
	if err != nil {
		return err
	}
	g.Services = services
	return nil
}

func updateService(g *Global, in UpdateServiceInput) error {
	return document.Modify(g.Services, in.ID, ErrCodeServiceNotFound, "service", func(s *Service) {
		in.Title.Apply(&s.Title)
		in.Description.ApplyNullable(&s.Description)
	})
}

// deleteService also drops the service from every tier that included it.
func deleteService(g *Global, in DeleteServiceInput) error {
	services, err := document.Delete(g.Services, in.ID, ErrCodeServiceNotFound, "service")
	if err != nil {
		return err
	}
	document.Renumber(services, setServiceOrder)
	g.Services = services
	for i := range g.Tiers {
		g.Tiers[i].IncludedServiceIDs = slices.DeleteFunc(g.Tiers[i].IncludedServiceIDs,
			func(id string) bool { return id == in.ID })
	}
	return nil
}

func reorderServices(g *Global, in ReorderServicesInput) {
	g.Services = document.Reorder(g.Services, in.Order, setServiceOrder)
}

func setServiceOrder(s *Service, i int) { s.DisplayOrder = i }
