package cart

import (
	"strconv"

	"bigcorp/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Line はカート1行分。
// Price は追加時点の単価スナップショットで、商品価格が後から変わっても使い続ける。
type Line struct {
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Cart は商品ID（文字列）→ Line のマップ。
// セッションIDごとに Store へJSONで保存する。
type Cart map[string]Line

func New() Cart {
	return Cart{}
}

func Key(productID int64) string {
	return strconv.FormatInt(productID, 10)
}

// Add は商品を追加する。
// 既にあれば数量を加算し、単価スナップショットは現在の商品価格で取り直す。
func (c Cart) Add(product model.Product, quantity int64) {
	key := Key(product.ID)

	line, ok := c[key]
	if !ok {
		c[key] = Line{Quantity: quantity, Price: product.Price}
		return
	}

	line.Quantity += quantity
	line.Price = product.Price
	c[key] = line
}

// Update は数量を上書きして単価スナップショットを取り直す。
func (c Cart) Update(product model.Product, quantity int64) {
	c[Key(product.ID)] = Line{Quantity: quantity, Price: product.Price}
}

// Delete は行を削除。無ければ何もしない。
func (c Cart) Delete(productID int64) {
	delete(c, Key(productID))
}

// Len は全行の数量合計。
func (c Cart) Len() int64 {
	var n int64
	for _, line := range c {
		n += line.Quantity
	}
	return n
}

// TotalPrice はスナップショット単価×数量の合計。
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return total
}

// ProductIDs はカートに入っている商品IDの一覧。
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for key := range c {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
