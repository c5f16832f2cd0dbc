package model

// TransactionStatus is shared by ventas and compras.
type TransactionStatus string

const (
	StatusPendiente  TransactionStatus = "Pendiente"
	StatusCompletado TransactionStatus = "Completado"
	StatusCancelado  TransactionStatus = "Cancelado"
)
