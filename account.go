package openload

import "encoding/json"

// AccountInfo is the account-level snapshot reported by the service.
type AccountInfo struct {
	ExtID       string     `json:"extid"`
	Email       string     `json:"email"`
	SignupAt    string     `json:"signup_at"`
	StorageLeft FlexInt    `json:"storage_left"`
	StorageUsed FlexInt    `json:"storage_used"`
	Balance     FlexString `json:"balance"`
	Traffic     Traffic    `json:"traffic"`

	// Extra holds remote fields the typed descriptor does not model.
	Extra map[string]any `json:"-"`
}

// Traffic reports the account's transfer budget. A negative Left means
// unlimited.
type Traffic struct {
	Left    FlexInt `json:"left"`
	Used24h FlexInt `json:"used_24h"`
}

func (a *AccountInfo) UnmarshalJSON(data []byte) error {
	type alias AccountInfo
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	*a = AccountInfo(known)
	a.Extra = extraFields(data, "extid", "email", "signup_at", "storage_left", "storage_used", "balance", "traffic")

	return nil
}

// AccountInfo requests everything account related: used storage, traffic
// budget and reward balance.
func (c *Client) AccountInfo() (*AccountInfo, error) {
	var info AccountInfo
	if err := c.get("account/info", nil, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
