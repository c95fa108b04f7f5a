// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package googleforms

// Subset of the Drive v3 and Forms v1 JSON resources that the client reads.

type driveFileList struct {
	Files []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		ModifiedTime string `json:"modifiedTime"`
	} `json:"files"`
}

type form struct {
	FormID string `json:"formId"`
	Info   *struct {
		Title string `json:"title"`
	} `json:"info"`
	Items []item `json:"items"`
}

type item struct {
	ItemID            string             `json:"itemId"`
	Title             *string            `json:"title"`
	QuestionItem      *questionItem      `json:"questionItem"`
	QuestionGroupItem *questionGroupItem `json:"questionGroupItem"`
}

type questionItem struct {
	Question *question `json:"question"`
}

type questionGroupItem struct {
	Questions []question `json:"questions"`
	Grid      *struct {
		Columns *choiceQuestion `json:"columns"`
	} `json:"grid"`
}

type question struct {
	QuestionID     string          `json:"questionId"`
	ChoiceQuestion *choiceQuestion `json:"choiceQuestion"`
	TextQuestion   *struct{}       `json:"textQuestion"`
	DateQuestion   *struct{}       `json:"dateQuestion"`
	TimeQuestion   *struct{}       `json:"timeQuestion"`
	ScaleQuestion  *scaleQuestion  `json:"scaleQuestion"`
	RowQuestion    *struct {
		Title *string `json:"title"`
	} `json:"rowQuestion"`
}

type choiceQuestion struct {
	Type    string `json:"type"`
	Options []struct {
		Value *string `json:"value"`
	} `json:"options"`
}

type scaleQuestion struct {
	Low       *int   `json:"low"`
	High      *int   `json:"high"`
	LowLabel  string `json:"lowLabel"`
	HighLabel string `json:"highLabel"`
}

type responseList struct {
	Responses     []formResponse `json:"responses"`
	NextPageToken string         `json:"nextPageToken"`
}

type formResponse struct {
	ResponseID        string            `json:"responseId"`
	CreateTime        string            `json:"createTime"`
	LastSubmittedTime string            `json:"lastSubmittedTime"`
	Answers           map[string]answer `json:"answers"`
}

type answer struct {
	TextAnswers *struct {
		Answers []struct {
			Value *string `json:"value"`
		} `json:"answers"`
	} `json:"textAnswers"`
	FileUploadAnswers *struct {
		Answers []struct {
			FileID   string `json:"fileId"`
			FileName string `json:"fileName"`
			MimeType string `json:"mimeType"`
		} `json:"answers"`
	} `json:"fileUploadAnswers"`
}
