package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Mesh inspector</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			table.summary {
				border-collapse: collapse;
				margin: 10px 0;
			}

			table.summary td {
				border: 1px solid #444;
				padding: 2px 8px;
			}

			input[type="number"],
			select,
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3;
			}

			h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Mesh parameters</h1>
                <form id="mesh-form" method="POST">
                    <label for="source">Source:</label>
                    <select id="source" name="source">
                        <option value="grid">grid</option>
                        <option value="sphere">sphere</option>
                        <option value="model">model</option>
                    </select><br>
                    <label for="rows">Rows:</label>
                    <input type="number" id="rows" name="rows" value="8" min="1" max="200">
                    <label for="cols">Cols:</label>
                    <input type="number" id="cols" name="cols" value="8" min="1" max="200"><br>
                    <label for="scramble">Scrambled triangles (%):</label>
                    <input type="number" id="scramble" name="scramble" value="30" min="0" max="100">
                    <label for="seed">Seed:</label>
                    <input type="number" id="seed" name="seed" value="1"><br>
                    <label for="cells">Sphere cells:</label>
                    <input type="number" id="cells" name="cells" value="16" min="2" max="128"><br>
                    <input type="submit" value="Build">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Logs</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('mesh-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('request failed');
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Error:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
