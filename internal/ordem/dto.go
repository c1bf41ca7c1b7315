package ordem

import "github.com/VisualPrintBR/api-pcp/internal/models"

// itemRequest é um item dentro do payload de criação de O.R.
type itemRequest struct {
	NumeroItem  string         `json:"numeroItem"`
	Item        string         `json:"item"`
	Quantidade  int            `json:"quantidade"`
	DataEntrega string         `json:"dataEntrega"`
	Anexos      []models.Anexo `json:"anexos"`
}

// criarOrdemRequest cria uma O.R inteira: cabeçalho comum + itens.
type criarOrdemRequest struct {
	OR         string            `json:"or"`
	Cliente    string            `json:"cliente"`
	Vendedor   string            `json:"vendedor"`
	Prioridade models.Prioridade `json:"prioridade"`
	Observacao string            `json:"observacao"`
	Itens      []itemRequest     `json:"itens"`
}

// atualizarItemRequest edita um item isolado (sem tocar no cabeçalho do
// cluster; para isso existe o PUT de cabeçalho por O.R).
type atualizarItemRequest struct {
	NumeroItem  string         `json:"numeroItem"`
	Item        string         `json:"item"`
	Quantidade  int            `json:"quantidade"`
	DataEntrega string         `json:"dataEntrega"`
	Anexos      []models.Anexo `json:"anexos"`
}

type deletarLoteRequest struct {
	IDs []uint `json:"ids"`
}
