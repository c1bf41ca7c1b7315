package models

import "time"

// HistoricoEntry é um registro imutável da trilha de auditoria de uma ordem.
// É anexado a cada mudança de status de etapa (ou evento sintético, como
// edição de dados e reativação) e nunca é alterado ou removido.
type HistoricoEntry struct {
	UsuarioID   uint      `json:"usuarioId"`
	UsuarioNome string    `json:"usuarioNome"`
	Timestamp   time.Time `json:"timestamp"`
	Status      Status    `json:"status"`
	Setor       Etapa     `json:"setor"`
}

// Anexo é um blob opaco (data URL em base64) carregado junto à ordem.
type Anexo struct {
	Nome    string `json:"nome"`
	Tipo    string `json:"tipo"`
	DataURL string `json:"dataUrl"`
}
