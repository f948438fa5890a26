package domain

import "github.com/shopspring/decimal"

// DeepCopy returns a copy of the scenario that shares no pointers or slices
// with the original.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	c := *s
	c.ProjectionInput = *s.ProjectionInput.DeepCopy()
	return &c
}

// DeepCopy returns a copy of the input that shares no pointers or slices with
// the original.
func (in *ProjectionInput) DeepCopy() *ProjectionInput {
	if in == nil {
		return nil
	}
	c := *in
	if in.Events != nil {
		c.Events = make([]Event, len(in.Events))
		for i, e := range in.Events {
			e.Enabled = copyBool(e.Enabled)
			e.AnnualGrowthPct = copyDecimal(e.AnnualGrowthPct)
			c.Events[i] = e
		}
	}
	if in.Assumptions != nil {
		a := Assumptions{
			InflationRate:       copyDecimal(in.Assumptions.InflationRate),
			SalaryGrowthRate:    copyDecimal(in.Assumptions.SalaryGrowthRate),
			RentAnnualGrowthPct: copyDecimal(in.Assumptions.RentAnnualGrowthPct),
		}
		c.Assumptions = &a
	}
	if in.Positions != nil {
		c.Positions = in.Positions.deepCopy()
	}
	return &c
}

func (p *Positions) deepCopy() *Positions {
	c := Positions{}
	if p.Home != nil {
		h := p.Home.deepCopy()
		c.Home = &h
	}
	if p.Homes != nil {
		c.Homes = make([]HomePosition, len(p.Homes))
		for i, h := range p.Homes {
			c.Homes[i] = h.deepCopy()
		}
	}
	if p.Loans != nil {
		c.Loans = make([]LoanPosition, len(p.Loans))
		for i, l := range p.Loans {
			l.MonthlyPayment = copyDecimal(l.MonthlyPayment)
			c.Loans[i] = l
		}
	}
	c.Investments = append([]InvestmentPosition(nil), p.Investments...)
	c.Cars = append([]CarPosition(nil), p.Cars...)
	return &c
}

func (h HomePosition) deepCopy() HomePosition {
	if h.Existing != nil {
		e := *h.Existing
		h.Existing = &e
	}
	if h.Mortgage != nil {
		m := *h.Mortgage
		h.Mortgage = &m
	}
	if h.Rental != nil {
		r := *h.Rental
		h.Rental = &r
	}
	return h
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
