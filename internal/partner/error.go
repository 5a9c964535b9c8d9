package partner

import "errors"

var (
	ErrNotAPartner    = errors.New("only shop accounts can import a price list")
	ErrBadURL         = errors.New("url must be a valid http(s) address")
	ErrFetchFailed    = errors.New("failed to fetch price list")
	ErrBadPriceList   = errors.New("price list is not valid YAML")
	ErrShopTaken      = errors.New("shop name belongs to another partner")
	ErrUnknownGoodCat = errors.New("good references a category missing from the price list")
)
