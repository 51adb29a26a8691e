package rod

// Pages served by the adapter tests.
const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	LoginFormHTML = `<!DOCTYPE html>
<html>
<head><title>Login</title></head>
<body>
	<form id="login" onsubmit="return false">
		<input id="username" type="text" name="username" class="ant-input field" />
		<input id="password" type="password" name="password" class="ant-input" />
		<button id="submit" type="submit" class="ant-btn">Sign In</button>
	</form>
	<a href="#orders">Orders</a>
	<div class="ant-message" id="toast"></div>
	<script>
		document.getElementById('submit').addEventListener('click', function() {
			document.getElementById('toast').textContent = 'Welcome, ' +
				document.getElementById('username').value;
		});
	</script>
</body>
</html>`

	SelectHTML = `<!DOCTYPE html>
<html>
<body>
	<select id="status">
		<option value="new">New</option>
		<option value="paid">Paid</option>
		<option value="shipped">Shipped</option>
	</select>
	<button id="off" disabled>Disabled</button>
	<div id="hidden" style="display:none">secret</div>
</body>
</html>`

	ObscuredHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="target" style="position:absolute;top:10px;left:10px">Pay</button>
	<div id="overlay" style="position:absolute;top:0;left:0;width:100%;height:100%;background:rgba(0,0,0,0.1)"></div>
	<div id="result"></div>
	<script>
		document.getElementById('target').addEventListener('click', function() {
			document.getElementById('result').textContent = 'paid';
		});
	</script>
</body>
</html>`

	WideHTML = `<!DOCTYPE html>
<html>
<body style="margin:0">
	<div style="width:3000px;height:200px;background:linear-gradient(90deg,#f00,#00f)"></div>
</body>
</html>`
)
