package i18n

// DefaultMessages is the built-in English/Japanese message table.
var DefaultMessages = Messages{
	Title: {
		English:  "Salesforce Company Lookup",
		Japanese: "Salesforce 企業検索",
	},
	Connecting: {
		English:  "Connecting to Salesforce...",
		Japanese: "Salesforceに接続しています...",
	},
	AuthSuccess: {
		English:  "Authentication successful.",
		Japanese: "認証に成功しました。",
	},
	AuthFailed: {
		English:  "Authentication failed: %v",
		Japanese: "認証に失敗しました: %v",
	},
	InstanceURL: {
		English:  "Instance URL: %s",
		Japanese: "インスタンスURL: %s",
	},
	PromptUsername: {
		English:  "Salesforce username: ",
		Japanese: "Salesforceユーザー名: ",
	},
	PromptPassword: {
		English:  "Salesforce password (with security token): ",
		Japanese: "Salesforceパスワード（セキュリティトークン付き）: ",
	},
	PromptClientID: {
		English:  "Connected app client ID: ",
		Japanese: "接続アプリケーションのクライアントID: ",
	},
	PromptClientSecret: {
		English:  "Connected app client secret: ",
		Japanese: "接続アプリケーションのクライアントシークレット: ",
	},
	SelectSearchMode: {
		English:  "Select search mode:",
		Japanese: "検索モードを選択してください:",
	},
	PartialMatch: {
		English:  "1. Partial match",
		Japanese: "1. 部分一致",
	},
	ExactMatch: {
		English:  "2. Exact match",
		Japanese: "2. 完全一致",
	},
	SelectPrompt: {
		English:  "Enter your choice (1 or 2): ",
		Japanese: "番号を入力してください (1 または 2): ",
	},
	InvalidSelection: {
		English:  "Invalid selection. Please enter 1 or 2.",
		Japanese: "無効な選択です。1 または 2 を入力してください。",
	},
	SelectInputMethod: {
		English:  "Select input method:",
		Japanese: "入力方法を選択してください:",
	},
	DirectInput: {
		English:  "1. Enter company names directly",
		Japanese: "1. 企業名を直接入力",
	},
	LoadCSV: {
		English:  "2. Load from CSV file",
		Japanese: "2. CSVファイルから読み込み",
	},
	EnterCompanyNames: {
		English:  "Enter company names separated by commas.",
		Japanese: "企業名をカンマ区切りで入力してください。",
	},
	CompanyNamesPrompt: {
		English:  "Company names: ",
		Japanese: "企業名: ",
	},
	EnterCSVPath: {
		English:  "Enter the path to a CSV file with company names in the first column.",
		Japanese: "1列目に企業名が入ったCSVファイルのパスを入力してください。",
	},
	FilePathPrompt: {
		English:  "File path: ",
		Japanese: "ファイルパス: ",
	},
	FileNotFound: {
		English:  "File not found: %s",
		Japanese: "ファイルが見つかりません: %s",
	},
	CSVReadFailed: {
		English:  "Could not read CSV file: %v",
		Japanese: "CSVファイルを読み込めませんでした: %v",
	},
	NoValidNames: {
		English:  "No valid company names were provided.",
		Japanese: "有効な企業名が入力されていません。",
	},
	SearchingFor: {
		English:  "Searching for: %s",
		Japanese: "検索中: %s",
	},
	SearchResultsFor: {
		English:  "Search results for %q",
		Japanese: "「%s」の検索結果",
	},
	AccountsFound: {
		English:  "%d account(s) found.",
		Japanese: "%d 件の取引先が見つかりました。",
	},
	NoCompanyInfo: {
		English:  "No company information found.",
		Japanese: "企業情報が見つかりませんでした。",
	},
	SearchFailed: {
		English:  "Search failed: %v",
		Japanese: "検索に失敗しました: %v",
	},
	AccountHeading: {
		English:  "Account %d",
		Japanese: "取引先 %d",
	},
	AccountID: {
		English:  "Account ID",
		Japanese: "取引先ID",
	},
	CompanyName: {
		English:  "Company Name",
		Japanese: "企業名",
	},
	Address: {
		English:  "Address",
		Japanese: "住所",
	},
	Phone: {
		English:  "Phone",
		Japanese: "電話番号",
	},
	Website: {
		English:  "Website",
		Japanese: "ウェブサイト",
	},
	Industry: {
		English:  "Industry",
		Japanese: "業種",
	},
	Employees: {
		English:  "Employees",
		Japanese: "従業員数",
	},
	Description: {
		English:  "Description",
		Japanese: "説明",
	},
	NoContacts: {
		English:  "No contacts found.",
		Japanese: "取引先責任者が見つかりませんでした。",
	},
	ContactsFailed: {
		English:  "Could not fetch contacts: %v",
		Japanese: "取引先責任者を取得できませんでした: %v",
	},
	RelatedContacts: {
		English:  "Related contacts (%d)",
		Japanese: "関連する取引先責任者 (%d)",
	},
	ContactHeading: {
		English:  "Contact %d",
		Japanese: "取引先責任者 %d",
	},
	ContactID: {
		English:  "Contact ID",
		Japanese: "取引先責任者ID",
	},
	Name: {
		English:  "Name",
		Japanese: "氏名",
	},
	ContactTitle: {
		English:  "Title",
		Japanese: "役職",
	},
	Email: {
		English:  "Email",
		Japanese: "メール",
	},
	Department: {
		English:  "Department",
		Japanese: "部署",
	},
	NotAvailable: {
		English:  "N/A",
		Japanese: "なし",
	},
	ExportToCSV: {
		English:  "Export results to file? (y/n): ",
		Japanese: "結果をファイルに出力しますか？ (y/n): ",
	},
	ExportedCompanies: {
		English:  "Companies exported to: %s",
		Japanese: "企業情報を出力しました: %s",
	},
	ExportedContacts: {
		English:  "Contacts exported to: %s",
		Japanese: "取引先責任者を出力しました: %s",
	},
	ContactsSkipped: {
		English:  "No contacts were found, so the contacts file was not created.",
		Japanese: "取引先責任者が見つからなかったため、取引先責任者ファイルは作成されませんでした。",
	},
	ExportFailed: {
		English:  "Export failed: %v",
		Japanese: "出力に失敗しました: %v",
	},
	NoResults: {
		English:  "No results to export.",
		Japanese: "出力する結果がありません。",
	},
}
