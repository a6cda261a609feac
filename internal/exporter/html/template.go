package html

// ReportTemplate renders the compatibility matrix as a single page
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.GeneratedAt}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.5;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #1e3c72 0%, #2a5298 100%);
            color: white;
            padding: 30px 20px;
            margin-bottom: 24px;
            border-radius: 8px;
        }

        header h1 {
            font-size: 2em;
            margin-bottom: 6px;
        }

        .summary {
            display: flex;
            gap: 16px;
            margin-bottom: 24px;
        }

        .summary .card {
            background: white;
            padding: 16px 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .summary .value {
            font-size: 1.8em;
            font-weight: bold;
            color: #2a5298;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            background: white;
            margin-bottom: 24px;
            font-size: 0.9em;
        }

        th, td {
            border: 1px solid #d4d4d4;
            padding: 6px 8px;
            text-align: center;
        }

        th {
            background: #e0e0e0;
            position: sticky;
            top: 0;
        }

        td.version {
            font-weight: bold;
            color: #0000ff;
            text-align: left;
            white-space: nowrap;
        }

        td.notes {
            text-align: left;
            font-size: 0.85em;
            color: #555;
        }

        .verdict-yes { background: #c8e6c9; }
        .verdict-no { background: #ffcdd2; }
        .noted { font-style: italic; }

        h2 {
            margin: 16px 0 8px;
            color: #2a5298;
        }

        dl.footnotes dt {
            font-weight: bold;
            float: left;
            width: 60px;
        }

        dl.footnotes dd {
            margin-left: 60px;
            margin-bottom: 4px;
        }

        dd.unregistered {
            color: #d32f2f;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Title}}</h1>
            <p>Source: {{.Source}} · Generated on {{.GeneratedAt}}</p>
        </header>

        <div class="summary">
            <div class="card"><div>Versions</div><div class="value">{{len .Rows}}</div></div>
            <div class="card"><div>Devices / Software</div><div class="value">{{len .Columns}}</div></div>
            <div class="card"><div>Compatible</div><div class="value">{{.TotalYes}}</div></div>
            <div class="card"><div>Not Compatible</div><div class="value">{{.TotalNo}}</div></div>
        </div>

        <h2>Matrix</h2>
        <table>
            <thead>
                <tr>
                    <th>Version</th>
                    {{range .Columns}}<th>{{.}}</th>{{end}}
                    <th>Notes</th>
                </tr>
            </thead>
            <tbody>
            {{range .Rows}}
                <tr>
                    <td class="version">{{.Version}}</td>
                    {{range .Cells}}<td class="{{verdictClass .}}" title="{{.Note}}">{{.Raw}}</td>{{end}}
                    <td class="notes">{{range notesFor .Version}}<div>{{.}}</div>{{end}}</td>
                </tr>
            {{end}}
            </tbody>
        </table>

        <h2>Per Column</h2>
        <table>
            <thead>
                <tr><th>Column</th><th>Yes</th><th>No</th><th>With Footnote</th></tr>
            </thead>
            <tbody>
            {{range .Stats}}
                <tr><td>{{.Column}}</td><td>{{.Yes}}</td><td>{{.No}}</td><td>{{.Noted}}</td></tr>
            {{end}}
            </tbody>
        </table>

        {{if .Footnotes}}
        <h2>Footnotes</h2>
        <dl class="footnotes">
            {{range .Footnotes}}
            <dt>{{.Marker}}</dt>
            <dd{{if not .Registered}} class="unregistered"{{end}}>{{.Explanation}}</dd>
            {{end}}
        </dl>
        {{end}}
    </div>
</body>
</html>
`
