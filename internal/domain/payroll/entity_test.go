package payroll

import "testing"

func TestNetPayAmount(t *testing.T) {
	p := Payroll{
		BasicSalary: 5000,
		Allowances:  500,
		Bonus:       250,
		OvertimePay: 125.5,
		Deductions:  100,
		Tax:         750,
		Insurance:   200,
	}
	want := 4825.5
	if got := p.NetPayAmount(); got != want {
		t.Errorf("NetPayAmount() = %v, want %v", got, want)
	}
}

func TestNetPayAmountCanBeNegative(t *testing.T) {
	p := Payroll{BasicSalary: 100, Deductions: 150}
	if got := p.NetPayAmount(); got != -50 {
		t.Errorf("NetPayAmount() = %v, want -50", got)
	}
}
