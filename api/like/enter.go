package like

type Like struct{}
