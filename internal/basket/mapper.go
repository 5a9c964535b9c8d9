package basket

// mapRowsToView folds the flat join rows into the response shape with
// per-line sums and the grand total.
func mapRowsToView(rows []lineRow) *View {
	view := &View{Lines: []*Line{}}

	for _, r := range rows {
		sum := r.Price * float64(r.Quantity)

		view.ID = r.BasketID
		view.Total += sum
		view.Lines = append(view.Lines, &Line{
			ID:            r.LineID,
			ProductInfoID: r.ProductInfoID,
			ProductName:   r.ProductName,
			ShopID:        r.ShopID,
			Quantity:      r.Quantity,
			Price:         r.Price,
			Sum:           sum,
		})
	}

	return view
}
