package pkg

// Status is a short message shown under the board.
type Status string

const (
	StatusNone          Status = ""
	StatusCheck                = "Check!"
	StatusCheckmate            = "Checkmate!"
	StatusStalemate            = "Stalemate!"
	StatusInvalidMove          = "Invalid Move"
	StatusKingInCheck          = "Invalid: King in Check"
	StatusSelectPiece          = "Select your piece"
	StatusLinkFailed           = "Link failed"
	StatusLinkError            = "Link error"
	StatusDesync               = "Desync: move rejected"
	StatusWaitingPeer          = "Waiting for opponent"
	StatusPressToRestart       = "Press enter to play again"
)
