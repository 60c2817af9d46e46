package domain

type BuyerProfile struct {
	IsCitizen      bool
	IsFirstHome    bool
	IsNewImmigrant bool // only changes the tax table together with IsFirstHome
}

func (p BuyerProfile) CitizenFirstHome() bool {
	return p.IsCitizen && p.IsFirstHome
}

func (p BuyerProfile) ImmigrantFirstHome() bool {
	return p.IsNewImmigrant && p.IsFirstHome
}
