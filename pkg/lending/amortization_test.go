package lending

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name            string
		terms           Terms
		wantInterest    string
		wantInsurance   string
		wantInstallment string
		wantPayable     string
	}{
		{
			name: "daily loan without insurance",
			terms: Terms{
				Principal:    dec("500000"),
				InterestRate: dec("20"),
				Installments: 30,
			},
			wantInterest:    "600000",
			wantInsurance:   "0",
			wantInstallment: "20000",
			wantPayable:     "600000",
		},
		{
			name: "fixed insurance spread over the term",
			terms: Terms{
				Principal:      dec("100000"),
				InterestRate:   dec("10"),
				Installments:   10,
				InsuranceMode:  InsuranceFixed,
				InsuranceValue: dec("5000"),
			},
			wantInterest:    "110000",
			wantInsurance:   "5000",
			wantInstallment: "11500",
			wantPayable:     "115000",
		},
		{
			name: "percent insurance over principal",
			terms: Terms{
				Principal:      dec("200000"),
				InterestRate:   dec("15"),
				Installments:   20,
				InsuranceMode:  InsurancePercent,
				InsuranceValue: dec("2"),
			},
			wantInterest:    "230000",
			wantInsurance:   "4000",
			wantInstallment: "11700",
			wantPayable:     "234000",
		},
		{
			name: "non-even division ceils to whole pesos",
			terms: Terms{
				Principal:    dec("100000"),
				InterestRate: dec("20"),
				Installments: 7,
			},
			wantInterest:    "120000",
			wantInsurance:   "0",
			wantInstallment: "17143",
			wantPayable:     "120000",
		},
		{
			name: "zero interest",
			terms: Terms{
				Principal:    dec("90000"),
				InterestRate: dec("0"),
				Installments: 30,
			},
			wantInterest:    "90000",
			wantInsurance:   "0",
			wantInstallment: "3000",
			wantPayable:     "90000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeQuote(tt.terms)
			assert.NoError(t, err)
			assert.True(t, quote.TotalWithInterest.Equal(dec(tt.wantInterest)),
				"interest: got %s", quote.TotalWithInterest)
			assert.True(t, quote.InsuranceTotal.Equal(dec(tt.wantInsurance)),
				"insurance: got %s", quote.InsuranceTotal)
			assert.True(t, quote.InstallmentValue.Equal(dec(tt.wantInstallment)),
				"installment: got %s", quote.InstallmentValue)
			assert.True(t, quote.TotalPayable.Equal(dec(tt.wantPayable)),
				"payable: got %s", quote.TotalPayable)
		})
	}
}

func TestComputeQuote_CeilingBounds(t *testing.T) {
	// installment*count must cover the payable, overshooting by less than
	// one peso per installment.
	terms := []Terms{
		{Principal: dec("100000"), InterestRate: dec("20"), Installments: 7},
		{Principal: dec("333333"), InterestRate: dec("17"), Installments: 23},
		{Principal: dec("1000000"), InterestRate: dec("10"), Installments: 13},
	}

	for _, tm := range terms {
		quote, err := ComputeQuote(tm)
		assert.NoError(t, err)

		n := decimal.NewFromInt(int64(tm.Installments))
		collected := quote.InstallmentValue.Mul(n)
		assert.True(t, collected.GreaterThanOrEqual(quote.TotalPayable),
			"schedule under-collects: %s < %s", collected, quote.TotalPayable)
		assert.True(t, collected.Sub(quote.TotalPayable).LessThan(n),
			"schedule overshoots by %s", collected.Sub(quote.TotalPayable))
	}
}

func TestComputeQuote_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		terms Terms
	}{
		{"zero principal", Terms{Principal: decimal.Zero, InterestRate: dec("20"), Installments: 30}},
		{"negative principal", Terms{Principal: dec("-100"), InterestRate: dec("20"), Installments: 30}},
		{"negative interest", Terms{Principal: dec("100000"), InterestRate: dec("-5"), Installments: 30}},
		{"zero installments", Terms{Principal: dec("100000"), InterestRate: dec("20"), Installments: 0}},
		{"unknown insurance mode", Terms{Principal: dec("100000"), InterestRate: dec("20"), Installments: 30, InsuranceMode: "weird"}},
		{"negative insurance", Terms{Principal: dec("100000"), InterestRate: dec("20"), Installments: 30, InsuranceMode: InsuranceFixed, InsuranceValue: dec("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeQuote(tt.terms)
			assert.Error(t, err)
		})
	}
}

func TestValidateRenewal(t *testing.T) {
	outstanding := dec("150000")

	assert.Error(t, ValidateRenewal(dec("100000"), outstanding))
	assert.Error(t, ValidateRenewal(dec("150000"), outstanding), "equality must be rejected")
	assert.NoError(t, ValidateRenewal(dec("150000.01"), outstanding))
	assert.NoError(t, ValidateRenewal(dec("300000"), outstanding))
}

func TestRenewalDisbursement(t *testing.T) {
	got := RenewalDisbursement(dec("300000"), dec("120000"))
	assert.True(t, got.Equal(dec("180000")), "got %s", got)
}
