package models

// Workspace is a delivery camp with a postal address.
type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PostNo      string    `json:"postNo"`
	BasicAddr   string    `json:"basicAddr"`
	AddrDetail  string    `json:"addrDetail"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// WorkspaceRequest is the body of workspace create and update calls.
type WorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PostNo      string `json:"postNo"`
	BasicAddr   string `json:"basicAddr"`
	AddrDetail  string `json:"addrDetail"`
}

// Address joins the address parts for display.
func (w Workspace) Address() string {
	switch {
	case w.PostNo == "" && w.AddrDetail == "":
		return w.BasicAddr
	case w.AddrDetail == "":
		return "(" + w.PostNo + ") " + w.BasicAddr
	case w.PostNo == "":
		return w.BasicAddr + " " + w.AddrDetail
	default:
		return "(" + w.PostNo + ") " + w.BasicAddr + " " + w.AddrDetail
	}
}
