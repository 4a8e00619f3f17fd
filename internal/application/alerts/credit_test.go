package alerts

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

func creditCustomer(name string, balance int64) entity.Customer {
	return entity.Customer{ID: "c-" + name, Name: name, Balance: decimal.NewFromInt(balance)}
}

func TestCheckOutstandingCredit_ResumenDeFiado(t *testing.T) {
	e := testEngine{
		customers: customersStub{items: []entity.Customer{
			creditCustomer("X", 100),
			creditCustomer("Y", 0), // sin deuda: no cuenta
			creditCustomer("Z", 50),
		}},
	}.build()

	alerts, err := e.checkOutstandingCredit(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "credit-outstanding", a.ID)
	assert.Equal(t, "₹150 Outstanding Credit", a.Title, "el título lleva el total adeudado")
	assert.Equal(t, "2 customers have pending payments. Highest: X (₹100)", a.Message)
	assert.Equal(t, entity.SeverityInfo, a.Severity, "2 deudores (no más de 3) es info")
}

func TestCheckOutstandingCredit_MasDeTresDeudoresEsWarning(t *testing.T) {
	e := testEngine{
		customers: customersStub{items: []entity.Customer{
			creditCustomer("A", 10),
			creditCustomer("B", 20),
			creditCustomer("C", 30),
			creditCustomer("D", 40),
		}},
	}.build()

	alerts, err := e.checkOutstandingCredit(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "Highest: D (₹40)")
}

func TestCheckOutstandingCredit_SingularConUnDeudor(t *testing.T) {
	e := testEngine{
		customers: customersStub{items: []entity.Customer{creditCustomer("X", 100)}},
	}.build()

	alerts, err := e.checkOutstandingCredit(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "1 customer has pending payments. Highest: X (₹100)", alerts[0].Message)
}

func TestCheckOutstandingCredit_SinDeudaNoEmite(t *testing.T) {
	e := testEngine{
		customers: customersStub{items: []entity.Customer{
			creditCustomer("X", 0),
			{ID: "c-neg", Name: "Neg", Balance: decimal.NewFromInt(-20)}, // saldo a favor
		}},
	}.build()

	alerts, err := e.checkOutstandingCredit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestCheckOutstandingCredit_MonedaConfigurada(t *testing.T) {
	e := testEngine{
		customers: customersStub{items: []entity.Customer{creditCustomer("X", 100)}},
		settings:  settingsStub{values: map[string]string{entity.SettingCurrency: "$"}},
	}.build()

	alerts, err := e.checkOutstandingCredit(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "$100 Outstanding Credit", alerts[0].Title)
}
