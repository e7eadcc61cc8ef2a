package gpumon

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderMetrics serializes a store snapshot into the plain-text
// exposition format: two gauge lines per record, no HELP/TYPE
// metadata. pure function, computed fresh on every call.
func RenderMetrics(records []Record) string {
	var body strings.Builder
	for _, rec := range records {
		labels := fmt.Sprintf(
			`brand=%q,family=%q,model=%q,memorySize=%q,sku=%q`,
			rec.Brand, rec.Family, rec.Model, rec.MemorySize, rec.SKU,
		)
		fmt.Fprintf(&body, "gpu_stock{%s} %d\n", labels, rec.Stock)
		fmt.Fprintf(&body, "gpu_price{%s} %s\n", labels, strconv.FormatFloat(rec.Price, 'f', -1, 64))
	}
	return body.String()
}
