package system

type System struct{}
