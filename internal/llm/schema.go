package llm

import "google.golang.org/genai"

// resultTypes is the closed set of tags the classifier may return.
var resultTypes = []string{"FILTER", "DASHBOARD", "DETAILS", "RECONCILIATION_DASHBOARD"}

// responseSchema describes the tagged-union result shape for structured
// output. Any payload outside this shape is rejected by the API before it
// reaches the parser.
func responseSchema() *genai.Schema {
	barData := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"label": {Type: genai.TypeString},
			"value": {Type: genai.TypeNumber},
		},
	}
	chartSegment := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"label": {Type: genai.TypeString},
			"value": {Type: genai.TypeNumber},
			"color": {Type: genai.TypeString},
		},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type": {Type: genai.TypeString, Enum: resultTypes},
			"filteredIds": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"detailsId": {Type: genai.TypeString},
			"dashboardData": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {Type: genai.TypeString},
					"metrics": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"label":  {Type: genai.TypeString},
								"value":  {Type: genai.TypeString},
								"change": {Type: genai.TypeString},
								"trend":  {Type: genai.TypeString, Enum: []string{"up", "down", "neutral"}},
							},
						},
					},
					"paymentMethodDistribution": {Type: genai.TypeArray, Items: chartSegment},
					"topCustomers":              {Type: genai.TypeArray, Items: barData},
				},
			},
			"reconciliationData": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":  {Type: genai.TypeString},
					"period": {Type: genai.TypeString},
					"summary": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"totalExpected":      {Type: genai.TypeNumber},
							"totalReceived":      {Type: genai.TypeNumber},
							"outstanding":        {Type: genai.TypeNumber},
							"reconciliationRate": {Type: genai.TypeNumber},
						},
					},
					"aging": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"label": {Type: genai.TypeString},
								"value": {Type: genai.TypeNumber},
								"count": {Type: genai.TypeNumber},
							},
						},
					},
					"discrepancies": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"id":             {Type: genai.TypeString},
								"reference":      {Type: genai.TypeString},
								"expectedAmount": {Type: genai.TypeNumber},
								"receivedAmount": {Type: genai.TypeNumber},
								"customer":       {Type: genai.TypeString},
								"date":           {Type: genai.TypeString},
								"status":         {Type: genai.TypeString, Enum: []string{"Matched", "Partial", "Unmatched", "Overdue"}},
								"method":         {Type: genai.TypeString},
								"notes":          {Type: genai.TypeString},
							},
						},
					},
					"methodBreakdown": {Type: genai.TypeArray, Items: chartSegment},
				},
			},
		},
		Required: []string{"type"},
	}
}
