package subscription

import "github.com/roach88/docreduce/internal/document"

func addSeat(g *Global, in AddSeatInput) error {
	seats, err := document.Insert(g.Seats, Seat(in), ErrCodeDuplicateSeatID, "seat")
	if err != nil {
		return err
	}
	g.Seats = seats
	return nil
}

func updateSeat(g *Global, in UpdateSeatInput) error {
	return document.Modify(g.Seats, in.ID, ErrCodeSeatNotFound, "seat", func(s *Seat) {
		in.Name.Apply(&s.Name)
		in.Email.ApplyNullable(&s.Email)
	})
}

func removeSeat(g *Global, in RemoveSeatInput) error {
	seats, err := document.Delete(g.Seats, in.ID, ErrCodeSeatNotFound, "seat")
	if err != nil {
		return err
	}
	g.Seats = seats
	return nil
}
