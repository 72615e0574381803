package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Ativo"
	ClientStatusInactive ClientStatus = "Inativo"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// MonthlyData guarda a performance mensal do cliente. O formato dos
// valores é livre; as chaves costumam ser períodos (ex: 2024-01).
type MonthlyData map[string]any

func (m MonthlyData) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(m))
}

func (m MonthlyData) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *MonthlyData) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = MonthlyData{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tipo não suportado para monthly_data: %T", src)
	}

	decoded := MonthlyData{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = decoded
	return nil
}

// ParseMonthlyData interpreta o campo monthly_data do payload; apenas
// objetos JSON são aceitos.
func ParseMonthlyData(raw json.RawMessage) (MonthlyData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrInvalidMonthlyMap
	}

	decoded := MonthlyData{}
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, ErrInvalidMonthlyMap
	}
	return decoded, nil
}

// Client é uma conta de vendas gerenciada por um squad
type Client struct {
	ID                   int64        `json:"id"`
	SquadID              *int64       `json:"squad"`
	SellerName           string       `json:"seller_name"`
	StoreName            string       `json:"store_name"`
	SellerID             *string      `json:"seller_id"`
	SellerEmail          *string      `json:"seller_email"`
	ContractedPlan       string       `json:"contracted_plan"`
	PlanValue            Amount       `json:"plan_value"`
	CommissionPercentage Amount       `json:"client_commission_percentage"`
	MonthlyData          MonthlyData  `json:"monthly_data"`
	Status               ClientStatus `json:"status"`
	CreatedAt            time.Time    `json:"created_at"`
	StatusChangedAt      *time.Time   `json:"status_changed_at"`
}

// IsActive indica se o cliente conta como ativo para o squad
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// ApplyStatusTransition decide o novo valor de status_changed_at a partir
// do status anteriormente persistido e do status que será gravado.
func ApplyStatusTransition(previous, next ClientStatus, existing *time.Time, now time.Time) *time.Time {
	switch {
	case previous == ClientStatusActive && next == ClientStatusInactive && existing == nil:
		return &now
	case previous == ClientStatusInactive && next == ClientStatusActive:
		return nil
	default:
		return existing
	}
}

// ClientPayload é o corpo de criação/atualização de clientes.
// Campos anuláveis usam Nullable para separar "ausente" de "null".
type ClientPayload struct {
	Squad                Nullable[int64]     `json:"squad" validate:"omitempty,min=1"`
	SellerName           *string             `json:"seller_name" validate:"required,notblank,max=200"`
	StoreName            *string             `json:"store_name" validate:"required,notblank,max=200"`
	SellerID             Nullable[string]    `json:"seller_id" validate:"omitempty,max=50"`
	SellerEmail          Nullable[string]    `json:"seller_email" validate:"omitempty,email,max=254"`
	Status               *ClientStatus       `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	ContractedPlan       *string             `json:"contracted_plan" validate:"required,notblank,max=100"`
	PlanValue            *Amount             `json:"plan_value" validate:"required,amount=8"`
	CommissionPercentage *Amount             `json:"client_commission_percentage" validate:"required,amount=3"`
	MonthlyData          json.RawMessage     `json:"monthly_data"`
	CreatedAt            *time.Time          `json:"created_at"`
	StatusChangedAt      Nullable[time.Time] `json:"status_changed_at"`
}

// PresentFields lista os campos enviados, usado na validação de PATCH
func (p ClientPayload) PresentFields() []string {
	var fields []string
	add := func(present bool, name string) {
		if present {
			fields = append(fields, name)
		}
	}

	add(p.Squad.Set, "Squad")
	add(p.SellerName != nil, "SellerName")
	add(p.StoreName != nil, "StoreName")
	add(p.SellerID.Set, "SellerID")
	add(p.SellerEmail.Set, "SellerEmail")
	add(p.Status != nil, "Status")
	add(p.ContractedPlan != nil, "ContractedPlan")
	add(p.PlanValue != nil, "PlanValue")
	add(p.CommissionPercentage != nil, "CommissionPercentage")

	return fields
}

// Apply copia para o cliente os campos presentes no payload. monthly_data
// só é substituído quando enviado, e nunca é mesclado.
func (c *Client) Apply(p ClientPayload, monthly MonthlyData) {
	if p.Squad.Set {
		c.SquadID = p.Squad.Ptr()
	}
	if p.SellerName != nil {
		c.SellerName = *p.SellerName
	}
	if p.StoreName != nil {
		c.StoreName = *p.StoreName
	}
	if p.SellerID.Set {
		c.SellerID = p.SellerID.Ptr()
	}
	if p.SellerEmail.Set {
		c.SellerEmail = p.SellerEmail.Ptr()
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ContractedPlan != nil {
		c.ContractedPlan = *p.ContractedPlan
	}
	if p.PlanValue != nil {
		c.PlanValue = *p.PlanValue
	}
	if p.CommissionPercentage != nil {
		c.CommissionPercentage = *p.CommissionPercentage
	}
	if monthly != nil {
		c.MonthlyData = monthly
	}
	if p.CreatedAt != nil {
		c.CreatedAt = *p.CreatedAt
	}
	if p.StatusChangedAt.Set {
		c.StatusChangedAt = p.StatusChangedAt.Ptr()
	}
}
