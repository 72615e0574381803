package domain

// Squad é um time de vendas responsável por uma carteira de clientes
type Squad struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ActiveClients int    `json:"active_clients"`
}

// SquadRequest é o payload de criação/atualização de squads.
// active_clients é mantido pelo sistema e não é aceito na entrada.
type SquadRequest struct {
	Name *string `json:"name" validate:"required,notblank,max=100"`
}

func (r SquadRequest) PresentFields() []string {
	var fields []string
	if r.Name != nil {
		fields = append(fields, "Name")
	}
	return fields
}

func (s *Squad) Apply(req SquadRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
}
